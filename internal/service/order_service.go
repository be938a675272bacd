package service

import (
	"context"

	"three-tier-api/internal/database"
	"three-tier-api/internal/model"
	"three-tier-api/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	connector database.Connector
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(connector database.Connector, logger zerolog.Logger) OrderService {
	return &orderService{
		connector: connector,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves all orders with their user names, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := withConn(ctx, s.connector, func(conn *database.Conn) error {
		var err error
		orders, err = repository.NewOrderRepository(conn, s.logger).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// Create validates the request and inserts an order, returning its ID.
// The user is not looked up; the foreign key decides whether it exists.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (int64, error) {
	if req == nil || !req.UserID.Present() || !req.TotalAmount.Present() {
		s.logger.Warn().Msg("order request missing required fields")
		return 0, model.ErrOrderFieldsRequired
	}

	status := req.Status
	if !status.Present() {
		status = model.NewField(string(model.OrderStatusPending))
	}

	var id int64
	err := withConn(ctx, s.connector, func(conn *database.Conn) error {
		var err error
		id, err = repository.NewOrderRepository(conn, s.logger).
			Create(ctx, req.UserID, req.TotalAmount, status)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("order_id", id).
		Stringer("user_id", req.UserID).
		Stringer("status", status).
		Msg("order created")

	return id, nil
}
