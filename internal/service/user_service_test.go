package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"three-tier-api/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *model.UserRequest
		expectConn  bool
		expectedErr error
	}{
		{
			name:        "Missing email",
			req:         &model.UserRequest{Name: model.NewField("Alice")},
			expectedErr: model.ErrUserFieldsRequired,
		},
		{
			name:        "Missing name",
			req:         &model.UserRequest{Email: model.NewField("alice@example.com")},
			expectedErr: model.ErrUserFieldsRequired,
		},
		{
			name:        "Nil request",
			req:         nil,
			expectedErr: model.ErrUserFieldsRequired,
		},
		{
			name:        "Null name",
			req:         &model.UserRequest{Name: model.NewField(nil), Email: model.NewField("alice@example.com")},
			expectedErr: model.ErrUserFieldsRequired,
		},
		{
			name:       "Empty strings are present",
			req:        &model.UserRequest{Name: model.NewField(""), Email: model.NewField("")},
			expectConn: true,
		},
		{
			name:       "Non-string name is passed through",
			req:        &model.UserRequest{Name: model.NewField("123"), Email: model.NewField("x@example.com")},
			expectConn: true,
		},
		{
			name:       "Valid request",
			req:        &model.UserRequest{Name: model.NewField("Alice"), Email: model.NewField("alice@example.com")},
			expectConn: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connector := new(MockConnector)
			svc := NewUserService(connector, logger)

			if tt.expectConn {
				name, err := tt.req.Name.Value()
				require.NoError(t, err)
				email, err := tt.req.Email.Value()
				require.NoError(t, err)

				conn, sqlMock := newMockConn(t)
				sqlMock.ExpectExec(`INSERT INTO users`).
					WithArgs(name, email).
					WillReturnResult(sqlmock.NewResult(11, 1))
				sqlMock.ExpectClose()
				connector.On("Connect", mock.Anything).Return(conn, nil)

				id, err := svc.Create(ctx, tt.req)
				require.NoError(t, err)
				assert.Equal(t, int64(11), id)
				assert.NoError(t, sqlMock.ExpectationsWereMet())
			} else {
				_, err := svc.Create(ctx, tt.req)
				assert.Equal(t, tt.expectedErr, err)
				connector.AssertNotCalled(t, "Connect", mock.Anything)
			}

			connector.AssertExpectations(t)
		})
	}
}

func TestUserService_ConnectFailure(t *testing.T) {
	ctx := context.Background()
	connErr := model.NewDatabaseError("connect", errors.New("dial tcp 10.0.0.1:3306: i/o timeout"))

	connector := new(MockConnector)
	connector.On("Connect", mock.Anything).Return(nil, connErr)
	svc := NewUserService(connector, zerolog.Nop())

	_, err := svc.List(ctx)
	assert.Equal(t, connErr, err)

	_, err = svc.Create(ctx, &model.UserRequest{Name: model.NewField("A"), Email: model.NewField("a@example.com")})
	assert.Equal(t, connErr, err)
}

func TestUserService_List(t *testing.T) {
	now := time.Now().UTC()
	conn, sqlMock := newMockConn(t)
	sqlMock.ExpectQuery(`FROM users`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
			AddRow(int64(1), "John Doe", "john@example.com", now, now))
	sqlMock.ExpectClose()

	connector := new(MockConnector)
	connector.On("Connect", mock.Anything).Return(conn, nil).Once()
	svc := NewUserService(connector, zerolog.Nop())

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "John Doe", users[0].Name)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
	connector.AssertExpectations(t)
}
