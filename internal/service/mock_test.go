package service

import (
	"context"
	"testing"

	"three-tier-api/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockConnector is a mock implementation of database.Connector.
type MockConnector struct {
	mock.Mock
}

func (m *MockConnector) Connect(ctx context.Context) (*database.Conn, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Conn), args.Error(1)
}

// newMockConn returns a MySQL connection backed by sqlmock.
func newMockConn(t *testing.T) (*database.Conn, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	return database.NewConn(sqlx.NewDb(mockDB, "mysql"), database.MySQL), sqlMock
}
