package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"three-tier-api/internal/config"
	"three-tier-api/internal/probe"
	"three-tier-api/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, probe.ServiceName)
	logger.Info().Str("server", cfg.Server.Hostname).Msg("starting web health probe")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := probe.New(cfg.Server.Hostname, cfg.App.Environment, logger)

	return server.New(cfg.Server.Address(), handler, logger).Run(ctx)
}
