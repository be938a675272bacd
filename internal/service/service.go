package service

import (
	"context"

	"three-tier-api/internal/database"
	"three-tier-api/internal/model"
)

// UserService defines operations for user management.
type UserService interface {
	// List retrieves all users, newest first.
	List(ctx context.Context) ([]model.User, error)

	// Create validates the request and inserts a user, returning its ID.
	Create(ctx context.Context, req *model.UserRequest) (int64, error)
}

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves all products, newest first.
	List(ctx context.Context) ([]model.Product, error)

	// Create validates the request and inserts a product, returning its ID.
	Create(ctx context.Context, req *model.ProductRequest) (int64, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// List retrieves all orders with their user names, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// Create validates the request and inserts an order, returning its ID.
	Create(ctx context.Context, req *model.OrderRequest) (int64, error)
}

// DiagnosticsService verifies the database and prepares its schema.
type DiagnosticsService interface {
	// TestDatabase connects, runs a trivial query, ensures the schema and
	// reports row counts.
	TestDatabase(ctx context.Context) (*model.DatabaseStatus, error)

	// EnsureSchema creates missing tables and seeds empty ones.
	EnsureSchema(ctx context.Context) error
}

// withConn opens a connection for the duration of fn.
func withConn(ctx context.Context, connector database.Connector, fn func(conn *database.Conn) error) error {
	conn, err := connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}
