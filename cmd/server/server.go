package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
)

// startHTTPServer runs the HTTP server until a shutdown signal arrives or ctx
// is canceled, then drains in-flight requests within the shutdown timeout.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	// Configure the server from the loaded settings
	addr := net.JoinHostPort(app.config.Server.Host, strconv.Itoa(app.config.Server.Port))
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Canceled by the caller or by a failed ListenAndServe
	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	// Listen for SIGINT and SIGTERM
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	// Serve in the background so this goroutine can wait for shutdown
	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("Server failed", "error", err)
			serveErr <- err
			cancelServer()
		}
	}()

	// Block until a signal arrives or the context ends
	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	// In-flight requests get server.shutdown_timeout_seconds to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout())
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return err
	}

	// Report a listen failure, which also triggered the shutdown
	select {
	case err := <-serveErr:
		return err
	default:
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
