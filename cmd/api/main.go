// @title Events API
// @version 1.0
// @description Submit, list, fetch and delete events.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventmanager/config"
	_ "eventmanager/docs"
	httpdelivery "eventmanager/internal/delivery/http"
	"eventmanager/internal/delivery/http/controllers"
	"eventmanager/internal/repository"
	"eventmanager/internal/services"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 10 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "api terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return exitConfig, err
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("open event store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("close event store", "err", err)
		}
	}()

	svc := services.NewEventService(store, logger, cfg.RequestTimeout)
	router := httpdelivery.NewRouter(controllers.NewEventController(logger, svc))

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           httpdelivery.NewHandler(logger, cfg.AllowedOrigins(), router),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "store", cfg.StoreDriver)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return exitRuntime, fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return exitRuntime, fmt.Errorf("shutdown: %w", err)
		}
	}
	return exitOK, nil
}
