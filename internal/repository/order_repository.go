package repository

import (
	"context"

	"three-tier-api/internal/database"
	"three-tier-api/internal/model"

	"github.com/rs/zerolog"
)

const (
	listOrdersQuery = `
		SELECT o.id, o.user_id, o.total_amount, o.status, o.created_at, u.name AS user_name
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC, o.id DESC
	`
	createOrderQuery = `INSERT INTO orders (user_id, total_amount, status) VALUES (?, ?, ?)`
)

// orderRepository implements OrderRepository over a single connection.
type orderRepository struct {
	conn   *database.Conn
	logger zerolog.Logger
}

// NewOrderRepository creates an order repository bound to conn.
func NewOrderRepository(conn *database.Conn, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		conn:   conn,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// List returns every order, newest first, with the owning user's name.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	if err := r.conn.SelectContext(ctx, &orders, listOrdersQuery); err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, model.NewDatabaseError("list orders", err)
	}

	return orders, nil
}

// Create inserts an order and returns its generated ID.
func (r *orderRepository) Create(ctx context.Context, userID, totalAmount, status model.Field) (int64, error) {
	id, err := r.conn.Dialect.InsertReturningID(ctx, r.conn, createOrderQuery, userID, totalAmount, status)
	if err != nil {
		r.logger.Error().
			Err(err).
			Stringer("user_id", userID).
			Stringer("status", status).
			Msg("failed to create order")
		return 0, model.NewDatabaseError("create order", err)
	}

	r.logger.Debug().Int64("order_id", id).Msg("order created successfully")

	return id, nil
}
