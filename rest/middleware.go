package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scipunch/newswire/metrics"
)

const fetchFailed = "Failed to fetch RSS feeds"

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CORSMiddleware allows any origin and answers preflight requests with an
// empty 200
func CORSMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, "*")
			header.Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)
			header.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}

// LoggingMiddleware logs each request with a level chosen by status
func LoggingMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)
			if err != nil {
				// Write the error response now so the status below is final
				c.Error(err)
			}

			res := c.Response()
			status := res.Status
			metrics.HTTPRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(status)).Inc()

			if req.URL.Path == "/healthz" || req.URL.Path == "/metrics" {
				return err
			}

			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"query", req.URL.RawQuery,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", res.Size,
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}
			if err != nil {
				logAttrs = append(logAttrs, "error", err)
			}

			ctx := req.Context()
			switch {
			case status >= 500:
				logger.ErrorContext(ctx, "request completed", logAttrs...)
			case status >= 400:
				logger.WarnContext(ctx, "request completed", logAttrs...)
			default:
				logger.InfoContext(ctx, "request completed", logAttrs...)
			}

			return err
		}
	}
}

// ErrorHandler renders errors as ErrorResponse. Server errors carry the
// error chain in details unless showDetails is false.
func ErrorHandler(showDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		resp := ErrorResponse{Error: fetchFailed, Message: err.Error()}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			resp.Message = fmt.Sprint(he.Message)
			if status < http.StatusInternalServerError {
				resp.Error = http.StatusText(status)
			}
			if he.Internal != nil {
				err = he.Internal
			}
		}

		if status >= http.StatusInternalServerError {
			slog.Error("request failed", "path", c.Request().URL.Path, "error", err)
			if showDetails {
				resp.Details = errorChain(err)
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, resp)
		}
		if writeErr != nil {
			slog.Warn("failed to write error response", "error", writeErr)
		}
	}
}

// errorChain renders every wrapped error, outermost first
func errorChain(err error) string {
	var out string
	for e := err; e != nil; e = errors.Unwrap(e) {
		if out != "" {
			out += "\n"
		}
		out += fmt.Sprintf("%T: %v", e, e)
	}
	return out
}
