package repository

import (
	"context"

	"three-tier-api/internal/database"
	"three-tier-api/internal/model"

	"github.com/rs/zerolog"
)

const (
	listProductsQuery = `
		SELECT id, name, price, description, created_at
		FROM products
		ORDER BY created_at DESC, id DESC
	`
	createProductQuery = `INSERT INTO products (name, price, description) VALUES (?, ?, ?)`
)

// productRepository implements ProductRepository over a single connection.
type productRepository struct {
	conn   *database.Conn
	logger zerolog.Logger
}

// NewProductRepository creates a product repository bound to conn.
func NewProductRepository(conn *database.Conn, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		conn:   conn,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List returns every product, newest first.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	if err := r.conn.SelectContext(ctx, &products, listProductsQuery); err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, model.NewDatabaseError("list products", err)
	}

	return products, nil
}

// Create inserts a product and returns its generated ID.
func (r *productRepository) Create(ctx context.Context, name, price, description model.Field) (int64, error) {
	id, err := r.conn.Dialect.InsertReturningID(ctx, r.conn, createProductQuery, name, price, description)
	if err != nil {
		r.logger.Error().Err(err).Stringer("name", name).Msg("failed to create product")
		return 0, model.NewDatabaseError("create product", err)
	}

	r.logger.Debug().Int64("product_id", id).Msg("product created successfully")

	return id, nil
}
