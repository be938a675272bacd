package service

import (
	"context"

	"three-tier-api/internal/database"
	"three-tier-api/internal/model"
	"three-tier-api/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	connector database.Connector
	logger    zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(connector database.Connector, logger zerolog.Logger) ProductService {
	return &productService{
		connector: connector,
		logger:    logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products, newest first.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := withConn(ctx, s.connector, func(conn *database.Conn) error {
		var err error
		products, err = repository.NewProductRepository(conn, s.logger).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// Create validates the request and inserts a product, returning its ID.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (int64, error) {
	if req == nil || !req.Name.Present() || !req.Price.Present() {
		s.logger.Warn().Msg("product request missing required fields")
		return 0, model.ErrProductFieldsRequired
	}

	var id int64
	err := withConn(ctx, s.connector, func(conn *database.Conn) error {
		var err error
		id, err = repository.NewProductRepository(conn, s.logger).
			Create(ctx, req.Name, req.Price, req.Description)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("product_id", id).Msg("product created")

	return id, nil
}
