package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"three-tier-api/internal/config"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Dialect identifies a supported database engine.
type Dialect string

const (
	MySQL    Dialect = config.DriverMySQL
	Postgres Dialect = config.DriverPostgres
)

// ParseDialect maps a configured driver name to its dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(driver) {
	case MySQL, Postgres:
		return Dialect(driver), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == Postgres {
		return "pgx"
	}
	return "mysql"
}

// DefaultPort returns the engine's well-known TCP port.
func (d Dialect) DefaultPort() int {
	if d == Postgres {
		return 5432
	}
	return 3306
}

// DSN builds the driver connection string for cfg.
func (d Dialect) DSN(cfg config.DatabaseConfig) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = d.DefaultPort()
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	if d == Postgres {
		u := url.URL{
			Scheme: "postgres",
			Host:   addr,
			Path:   "/" + cfg.Name,
			RawQuery: url.Values{
				"sslmode":         {cfg.SSLMode},
				"connect_timeout": {strconv.Itoa(int(cfg.ConnectTimeout.Seconds()))},
			}.Encode(),
		}
		if cfg.Username != "" {
			u.User = url.UserPassword(cfg.Username, cfg.Password)
		}
		return u.String()
	}

	mc := mysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = addr
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Timeout = cfg.ConnectTimeout
	// Loc defaults to UTC; the session zone must agree or CURRENT_TIMESTAMP
	// values are read back shifted.
	mc.Params = map[string]string{"time_zone": "'+00:00'"}
	return mc.FormatDSN()
}

// InsertReturningID executes an INSERT written with ? placeholders and
// returns the generated primary key.
func (d Dialect) InsertReturningID(ctx context.Context, db sqlx.ExtContext, query string, args ...interface{}) (int64, error) {
	query = db.Rebind(query)

	if d == Postgres {
		var id int64
		if err := db.QueryRowxContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
