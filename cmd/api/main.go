package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"three-tier-api/internal/config"
	"three-tier-api/internal/database"
	"three-tier-api/internal/handler"
	"three-tier-api/internal/router"
	"three-tier-api/internal/server"
	"three-tier-api/internal/service"
	"three-tier-api/internal/sysinfo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, handler.ServiceName)
	logger.Info().
		Str("environment", cfg.App.Environment).
		Str("server", cfg.Server.Hostname).
		Msg("starting three-tier API server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A fresh connection is opened per request; nothing is dialled here.
	connector, err := database.NewConnector(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize services
	userService := service.NewUserService(connector, logger)
	productService := service.NewProductService(connector, logger)
	orderService := service.NewOrderService(connector, logger)
	diagnosticsService := service.NewDiagnosticsService(connector, cfg.Database, logger)

	if cfg.Database.InitOnStartup {
		if err := diagnosticsService.EnsureSchema(ctx); err != nil {
			// The schema is still created lazily by /api/db-test.
			logger.Warn().Err(err).Msg("failed to initialize schema on startup")
		} else {
			logger.Info().Msg("database schema initialized")
		}
	}

	// Initialize HTTP handlers
	opts := handler.NewOptions(cfg)
	handlers := router.Handlers{
		Users:       handler.NewUserHandler(userService, opts, logger),
		Products:    handler.NewProductHandler(productService, opts, logger),
		Orders:      handler.NewOrderHandler(orderService, opts, logger),
		Diagnostics: handler.NewDiagnosticsHandler(diagnosticsService, sysinfo.NewSampler(logger), cfg, logger),
	}

	srv := server.New(cfg.Server.Address(), router.New(handlers, opts, logger), logger)

	return srv.Run(ctx)
}
