package main

import (
	"context"
	"fmt"
	"os"

	"three-tier-api/internal/config"
	"three-tier-api/internal/database"
	"three-tier-api/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
}

// run connects with the API's configuration and runs a trivial query. It
// never creates or seeds tables.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "db-check")

	connector, err := database.NewConnector(cfg.Database, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	conn, err := connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := repository.NewSchemaRepository(conn, logger).Ping(ctx); err != nil {
		return err
	}

	fmt.Printf("Successfully connected to %s database: %s\n", conn.Dialect, cfg.Database.Name)
	return nil
}
