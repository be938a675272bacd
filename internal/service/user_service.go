package service

import (
	"context"

	"three-tier-api/internal/database"
	"three-tier-api/internal/model"
	"three-tier-api/internal/repository"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	connector database.Connector
	logger    zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(connector database.Connector, logger zerolog.Logger) UserService {
	return &userService{
		connector: connector,
		logger:    logger.With().Str("service", "user").Logger(),
	}
}

// List retrieves all users, newest first.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := withConn(ctx, s.connector, func(conn *database.Conn) error {
		var err error
		users, err = repository.NewUserRepository(conn, s.logger).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("count", len(users)).Msg("retrieved users")

	return users, nil
}

// Create validates the request and inserts a user, returning its ID.
func (s *userService) Create(ctx context.Context, req *model.UserRequest) (int64, error) {
	if req == nil || !req.Name.Present() || !req.Email.Present() {
		s.logger.Warn().Msg("user request missing required fields")
		return 0, model.ErrUserFieldsRequired
	}

	var id int64
	err := withConn(ctx, s.connector, func(conn *database.Conn) error {
		var err error
		id, err = repository.NewUserRepository(conn, s.logger).Create(ctx, req.Name, req.Email)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user created")

	return id, nil
}
