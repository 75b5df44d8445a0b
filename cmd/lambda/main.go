package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"eventmanager/config"
	"eventmanager/internal/delivery/lambda"
	"eventmanager/internal/repository"
	"eventmanager/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	store, closeStore, err := repository.Open(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("open event store", "err", err)
		os.Exit(1)
	}

	h := lambda.NewHandler(logger, services.NewEventService(store, logger, cfg.RequestTimeout))
	// Start never returns; the runtime sends SIGTERM before the environment shuts down.
	awslambda.StartWithOptions(h.Handle, awslambda.WithEnableSIGTERM(onShutdown(logger, closeStore)))
}

// onShutdown releases the store when the execution environment is torn down.
func onShutdown(logger *slog.Logger, closeStore func() error) func() {
	return func() {
		if err := closeStore(); err != nil {
			logger.Error("close event store", "err", err)
			return
		}
		logger.Info("event store closed")
	}
}
