package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/scipunch/newswire/rest"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		e := echo.New()
		e.Server.ReadTimeout = cfg.Server.ReadTimeout.Duration
		e.Server.WriteTimeout = cfg.Server.WriteTimeout.Duration

		h := rest.NewHandler(a.cache, a.aggregator, a.engine, a.catalog, cfg.Search)
		rest.RegisterRoutes(e, h, cfg.Server)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		slog.Info("starting server", "address", cfg.Server.Address, "route", cfg.Server.Route, "environment", cfg.Server.Environment)

		g, gCtx := errgroup.WithContext(ctx)

		g.Go(func() error {
			if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-gCtx.Done()
			slog.Info("shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		slog.Info("server exited properly")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
