package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/vietcgi/kubernetes-platform-stack/docs"
	"github.com/vietcgi/kubernetes-platform-stack/pkg/api/handlers"
	"github.com/vietcgi/kubernetes-platform-stack/pkg/config"
	"github.com/vietcgi/kubernetes-platform-stack/pkg/logging"
)

// @title Kubernetes Platform Stack API
// @version 1.0
// @description Probe and status endpoints for cluster deployments.

// @license.name MIT
// @BasePath /
func main() {
	if err := run(); err != nil {
		slog.Error("shutting down", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	logging.Setup(cfg.LogLevel)

	api := http.Server{
		Addr:         cfg.Addr(),
		Handler:      handlers.Routes(cfg),
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
	}

	// Buffered so the goroutine can exit if the error is never collected.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("starting server",
			"app", cfg.AppName,
			"version", cfg.AppVersion,
			"environment", cfg.Environment,
			"addr", api.Addr,
		)
		serverErrors <- api.ListenAndServe()
	}()

	// Buffered because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("starting shutdown", "signal", sig.String())

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			slog.Warn("graceful shutdown did not complete",
				"timeout", cfg.Web.ShutdownTimeout,
				"error", err,
			)
			if err := api.Close(); err != nil {
				return fmt.Errorf("could not stop server: %w", err)
			}
		}
	}

	return nil
}
