package repository

import (
	"context"

	"three-tier-api/internal/database"
	"three-tier-api/internal/model"

	"github.com/rs/zerolog"
)

const (
	listUsersQuery = `
		SELECT id, name, email, created_at, updated_at
		FROM users
		ORDER BY created_at DESC, id DESC
	`
	createUserQuery = `INSERT INTO users (name, email) VALUES (?, ?)`
)

// userRepository implements UserRepository over a single connection.
type userRepository struct {
	conn   *database.Conn
	logger zerolog.Logger
}

// NewUserRepository creates a user repository bound to conn.
func NewUserRepository(conn *database.Conn, logger zerolog.Logger) UserRepository {
	return &userRepository{
		conn:   conn,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// List returns every user, newest first.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.conn.SelectContext(ctx, &users, listUsersQuery); err != nil {
		r.logger.Error().Err(err).Msg("failed to query users")
		return nil, model.NewDatabaseError("list users", err)
	}

	return users, nil
}

// Create inserts a user and returns its generated ID.
func (r *userRepository) Create(ctx context.Context, name, email model.Field) (int64, error) {
	id, err := r.conn.Dialect.InsertReturningID(ctx, r.conn, createUserQuery, name, email)
	if err != nil {
		r.logger.Error().Err(err).Stringer("email", email).Msg("failed to create user")
		return 0, model.NewDatabaseError("create user", err)
	}

	r.logger.Debug().Int64("user_id", id).Msg("user created successfully")

	return id, nil
}
