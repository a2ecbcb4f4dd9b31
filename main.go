package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meteocast/internal/config"
	"meteocast/internal/logger"
	"meteocast/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Error("Failed to load configuration", err)
		os.Exit(1)
	}
	logger.Global().SetLevel(logger.ParseLevel(cfg.LogLevel))

	logger.Infof("Starting meteocast service on port %s", cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)

	srv := server.NewServer(cfg)

	// Warm the model so the first reader does not pay for the fetch. A failed
	// warm-up is not fatal: the first request triggers another fetch.
	warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if _, err := srv.Refresh(warmCtx); err != nil {
		logger.Warnf("Initial fetch failed: %v", err)
	}
	cancel()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("HTTP server error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
