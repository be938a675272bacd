package service

import (
	"context"

	"three-tier-api/internal/config"
	"three-tier-api/internal/database"
	"three-tier-api/internal/model"
	"three-tier-api/internal/repository"

	"github.com/rs/zerolog"
)

// diagnosticsService implements DiagnosticsService.
type diagnosticsService struct {
	connector database.Connector
	cfg       config.DatabaseConfig
	logger    zerolog.Logger
}

// NewDiagnosticsService creates a new diagnostics service. cfg is only used
// to describe the target in the result.
func NewDiagnosticsService(connector database.Connector, cfg config.DatabaseConfig, logger zerolog.Logger) DiagnosticsService {
	return &diagnosticsService{
		connector: connector,
		cfg:       cfg,
		logger:    logger.With().Str("service", "diagnostics").Logger(),
	}
}

// TestDatabase connects, runs a trivial query, ensures the schema and
// reports row counts.
func (s *diagnosticsService) TestDatabase(ctx context.Context) (*model.DatabaseStatus, error) {
	status := &model.DatabaseStatus{
		Host: s.cfg.Host,
		Name: s.cfg.Name,
	}

	err := withConn(ctx, s.connector, func(conn *database.Conn) error {
		schema := repository.NewSchemaRepository(conn, s.logger)

		if err := schema.Ping(ctx); err != nil {
			return err
		}
		if err := schema.EnsureSchema(ctx); err != nil {
			return err
		}

		var err error
		if status.UsersCount, err = schema.CountUsers(ctx); err != nil {
			return err
		}
		if status.ProductsCount, err = schema.CountProducts(ctx); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("database test failed")
		return nil, err
	}

	status.Connected = true

	s.logger.Info().
		Int64("users_count", status.UsersCount).
		Int64("products_count", status.ProductsCount).
		Msg("database test succeeded")

	return status, nil
}

// EnsureSchema creates missing tables and seeds empty ones.
func (s *diagnosticsService) EnsureSchema(ctx context.Context) error {
	return withConn(ctx, s.connector, func(conn *database.Conn) error {
		return repository.NewSchemaRepository(conn, s.logger).EnsureSchema(ctx)
	})
}
