package repository

import (
	"context"

	"three-tier-api/internal/model"
)

// UserRepository defines the data access operations for users.
type UserRepository interface {
	// List returns every user, newest first.
	List(ctx context.Context) ([]model.User, error)

	// Create inserts a user and returns its generated ID. Values are bound
	// as sent; the column types decide whether they are accepted.
	Create(ctx context.Context, name, email model.Field) (int64, error)
}

// ProductRepository defines the data access operations for products.
type ProductRepository interface {
	// List returns every product, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// Create inserts a product and returns its generated ID. An absent
	// description is stored as NULL.
	Create(ctx context.Context, name, price, description model.Field) (int64, error)
}

// OrderRepository defines the data access operations for orders.
type OrderRepository interface {
	// List returns every order, newest first, with the owning user's name.
	List(ctx context.Context) ([]model.Order, error)

	// Create inserts an order and returns its generated ID.
	Create(ctx context.Context, userID, totalAmount, status model.Field) (int64, error)
}

// SchemaRepository checks connectivity and prepares the schema.
type SchemaRepository interface {
	// Ping runs a trivial query over the connection.
	Ping(ctx context.Context) error

	// EnsureSchema creates missing tables and seeds empty ones.
	EnsureSchema(ctx context.Context) error

	// CountUsers returns the number of rows in users.
	CountUsers(ctx context.Context) (int64, error)

	// CountProducts returns the number of rows in products.
	CountProducts(ctx context.Context) (int64, error)
}
