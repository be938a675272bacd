package service

import (
	"context"
	"errors"
	"testing"

	"three-tier-api/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	price := model.NewField("299.99")

	t.Run("Missing price", func(t *testing.T) {
		connector := new(MockConnector)
		svc := NewProductService(connector, zerolog.Nop())

		_, err := svc.Create(ctx, &model.ProductRequest{Name: model.NewField("Tablet")})
		assert.Equal(t, model.ErrProductFieldsRequired, err)
		connector.AssertNotCalled(t, "Connect", mock.Anything)
	})

	t.Run("Description defaults to NULL", func(t *testing.T) {
		conn, sqlMock := newMockConn(t)
		sqlMock.ExpectExec(`INSERT INTO products \(name, price, description\)`).
			WithArgs("Tablet", "299.99", nil).
			WillReturnResult(sqlmock.NewResult(4, 1))
		sqlMock.ExpectClose()

		connector := new(MockConnector)
		connector.On("Connect", mock.Anything).Return(conn, nil)
		svc := NewProductService(connector, zerolog.Nop())

		id, err := svc.Create(ctx, &model.ProductRequest{Name: model.NewField("Tablet"), Price: price})
		require.NoError(t, err)
		assert.Equal(t, int64(4), id)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Database error passes through", func(t *testing.T) {
		conn, sqlMock := newMockConn(t)
		sqlMock.ExpectExec(`INSERT INTO products`).WillReturnError(errors.New("Out of range value for column 'price'"))
		sqlMock.ExpectClose()

		connector := new(MockConnector)
		connector.On("Connect", mock.Anything).Return(conn, nil)
		svc := NewProductService(connector, zerolog.Nop())

		_, err := svc.Create(ctx, &model.ProductRequest{
			Name:        model.NewField("Tablet"),
			Price:       price,
			Description: model.NewField("10 inch"),
		})

		var dbErr *model.DatabaseError
		require.True(t, errors.As(err, &dbErr))
		assert.Equal(t, "Out of range value for column 'price'", dbErr.Err.Error())
	})
}

func TestProductService_List(t *testing.T) {
	conn, sqlMock := newMockConn(t)
	sqlMock.ExpectQuery(`FROM products`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "price", "description", "created_at"}))
	sqlMock.ExpectClose()

	connector := new(MockConnector)
	connector.On("Connect", mock.Anything).Return(conn, nil)
	svc := NewProductService(connector, zerolog.Nop())

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
