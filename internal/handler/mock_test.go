package handler

import (
	"context"

	"three-tier-api/internal/model"

	"github.com/stretchr/testify/mock"
)

const testServer = "api-test-1"

var testOptions = Options{Server: testServer, ExposeErrors: true}

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, req *model.UserRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, req *model.OrderRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

// MockDiagnosticsService is a mock implementation of DiagnosticsService.
type MockDiagnosticsService struct {
	mock.Mock
}

func (m *MockDiagnosticsService) TestDatabase(ctx context.Context) (*model.DatabaseStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DatabaseStatus), args.Error(1)
}

func (m *MockDiagnosticsService) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// stubSampler returns a fixed resource snapshot.
type stubSampler struct {
	info model.ResourceInfo
}

func (s stubSampler) Sample(ctx context.Context) model.ResourceInfo {
	return s.info
}
