package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scipunch/newswire/config"
)

func RegisterRoutes(e *echo.Echo, h *Handler, cfg config.ServerConfig) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(cfg.Environment != "production")

	// 1. Request ID first so every log line can carry it
	e.Use(middleware.RequestID())

	// 2. Recover panics into 500 responses
	e.Use(middleware.Recover())

	// 3. CORS headers on every response, preflight short-circuits here
	e.Use(CORSMiddleware())

	// 4. Logging
	e.Use(LoggingMiddleware(slog.Default()))

	e.GET(cfg.Route, h.Aggregate)
	e.POST(cfg.Route, h.Aggregate)
	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
