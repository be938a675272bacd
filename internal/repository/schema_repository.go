package repository

import (
	"context"
	"fmt"

	"three-tier-api/internal/database"
	"three-tier-api/internal/model"

	"github.com/rs/zerolog"
)

// createTableStatements holds the DDL for each dialect, in dependency order.
var createTableStatements = map[database.Dialect][]string{
	database.MySQL: {
		`CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			description TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id INT,
			total_amount DECIMAL(10, 2) NOT NULL,
			status ENUM('pending', 'completed', 'cancelled') DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
	},
	database.Postgres: {
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			description TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INT REFERENCES users(id),
			total_amount DECIMAL(10, 2) NOT NULL,
			status VARCHAR(20) DEFAULT 'pending'
				CHECK (status IN ('pending', 'completed', 'cancelled')),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

const (
	pingQuery          = `SELECT 1`
	countUsersQuery    = `SELECT COUNT(*) FROM users`
	countProductsQuery = `SELECT COUNT(*) FROM products`

	seedUsersQuery = `
		INSERT INTO users (name, email) VALUES
			('John Doe', 'john@example.com'),
			('Jane Smith', 'jane@example.com'),
			('Bob Johnson', 'bob@example.com')
	`
	seedProductsQuery = `
		INSERT INTO products (name, price, description) VALUES
			('Laptop', 999.99, 'High-performance laptop'),
			('Smartphone', 499.99, 'Latest smartphone'),
			('Headphones', 99.99, 'Wireless headphones')
	`
)

// schemaRepository implements SchemaRepository over a single connection.
type schemaRepository struct {
	conn   *database.Conn
	logger zerolog.Logger
}

// NewSchemaRepository creates a schema repository bound to conn.
func NewSchemaRepository(conn *database.Conn, logger zerolog.Logger) SchemaRepository {
	return &schemaRepository{
		conn:   conn,
		logger: logger.With().Str("repository", "schema").Logger(),
	}
}

// Ping runs a trivial query over the connection.
func (r *schemaRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.conn.GetContext(ctx, &one, pingQuery); err != nil {
		r.logger.Error().Err(err).Msg("connectivity query failed")
		return model.NewDatabaseError("ping", err)
	}
	return nil
}

// EnsureSchema creates missing tables and seeds users and products when they
// are empty. Existing tables are never altered. Seeding is not serialised
// across concurrent callers.
func (r *schemaRepository) EnsureSchema(ctx context.Context) error {
	statements, ok := createTableStatements[r.conn.Dialect]
	if !ok {
		return model.NewDatabaseError("create tables", fmt.Errorf("no schema for dialect %q", r.conn.Dialect))
	}

	for _, stmt := range statements {
		if _, err := r.conn.ExecContext(ctx, stmt); err != nil {
			r.logger.Error().Err(err).Msg("failed to create table")
			return model.NewDatabaseError("create tables", err)
		}
	}

	if err := r.seedIfEmpty(ctx, "users", countUsersQuery, seedUsersQuery); err != nil {
		return err
	}

	return r.seedIfEmpty(ctx, "products", countProductsQuery, seedProductsQuery)
}

func (r *schemaRepository) seedIfEmpty(ctx context.Context, table, countQuery, seedQuery string) error {
	count, err := r.count(ctx, table, countQuery)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := r.conn.ExecContext(ctx, seedQuery); err != nil {
		r.logger.Error().Err(err).Str("table", table).Msg("failed to seed table")
		return model.NewDatabaseError("seed "+table, err)
	}

	r.logger.Info().Str("table", table).Msg("seeded empty table")

	return nil
}

// CountUsers returns the number of rows in users.
func (r *schemaRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users", countUsersQuery)
}

// CountProducts returns the number of rows in products.
func (r *schemaRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, "products", countProductsQuery)
}

func (r *schemaRepository) count(ctx context.Context, table, query string) (int64, error) {
	var count int64
	if err := r.conn.GetContext(ctx, &count, query); err != nil {
		r.logger.Error().Err(err).Str("table", table).Msg("failed to count rows")
		return 0, model.NewDatabaseError("count "+table, err)
	}
	return count, nil
}
