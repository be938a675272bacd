package repository

import (
	"testing"

	"three-tier-api/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newMockConn returns a connection backed by sqlmock for the given dialect.
func newMockConn(t *testing.T, dialect database.Dialect) (*database.Conn, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	conn := database.NewConn(sqlx.NewDb(mockDB, dialect.DriverName()), dialect)
	t.Cleanup(func() { conn.Close() })

	return conn, mock
}
