package database

import (
	"context"
	"fmt"

	"three-tier-api/internal/config"
	"three-tier-api/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Conn is a database handle opened for a single unit of work. Close it when
// the work is done.
type Conn struct {
	*sqlx.DB
	Dialect Dialect
}

// NewConn wraps an already opened handle. Tests use it to hand out sqlmock
// connections.
func NewConn(db *sqlx.DB, dialect Dialect) *Conn {
	return &Conn{DB: db, Dialect: dialect}
}

// Connector hands out database connections.
type Connector interface {
	// Connect opens and verifies a new connection. Failures are returned as
	// *model.DatabaseError carrying the driver error.
	Connect(ctx context.Context) (*Conn, error)
}

// sqlConnector opens a fresh handle on every call; nothing is shared between
// requests.
type sqlConnector struct {
	cfg     config.DatabaseConfig
	dialect Dialect
	dsn     string
	logger  zerolog.Logger
}

// NewConnector creates a connector for the configured driver.
func NewConnector(cfg config.DatabaseConfig, logger zerolog.Logger) (Connector, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create connector: %w", err)
	}

	logger.Info().
		Str("driver", cfg.Driver).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Name).
		Dur("connect_timeout", cfg.ConnectTimeout).
		Msg("database connector configured")

	return &sqlConnector{
		cfg:     cfg,
		dialect: dialect,
		dsn:     dialect.DSN(cfg),
		logger:  logger.With().Str("component", "connector").Logger(),
	}, nil
}

// Connect opens a handle limited to one underlying connection and pings it.
// Only connection establishment is bounded by the configured timeout.
func (c *sqlConnector) Connect(ctx context.Context) (*Conn, error) {
	connectCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()

	db, err := sqlx.Open(c.dialect.DriverName(), c.dsn)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to open database handle")
		return nil, model.NewDatabaseError("connect", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		c.logger.Warn().
			Err(err).
			Str("host", c.cfg.Host).
			Str("database", c.cfg.Name).
			Msg("failed to connect to database")
		return nil, model.NewDatabaseError("connect", err)
	}

	c.logger.Debug().Str("database", c.cfg.Name).Msg("database connection opened")

	return NewConn(db, c.dialect), nil
}
