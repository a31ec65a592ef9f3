package storefront

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Quiggy85/itstheseason/internal/domain/catalog"
	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
)

// MockSeasonRepository is a mock implementation of SeasonRepository
type MockSeasonRepository struct {
	mock.Mock
}

func (m *MockSeasonRepository) FindCurrent(ctx context.Context, now time.Time) (*catalog.Season, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Season), args.Error(1)
}

func (m *MockSeasonRepository) CountCurrent(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySeason(ctx context.Context, seasonID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

// MockShippingQuoteRepository is a mock implementation of ShippingQuoteRepository
type MockShippingQuoteRepository struct {
	mock.Mock
}

func (m *MockShippingQuoteRepository) FindBySKUs(ctx context.Context, skus []string) ([]catalog.ShippingQuote, error) {
	args := m.Called(ctx, skus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ShippingQuote), args.Error(1)
}

func (m *MockShippingQuoteRepository) UpsertBatch(ctx context.Context, quotes []catalog.ShippingQuote) error {
	args := m.Called(ctx, quotes)
	return args.Error(0)
}

// MockSupplierClient is a mock implementation of supplier.Client
type MockSupplierClient struct {
	mock.Mock
}

func (m *MockSupplierClient) ListProductsBySKUs(ctx context.Context, skus []string) ([]supplier.Product, error) {
	args := m.Called(ctx, skus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]supplier.Product), args.Error(1)
}

func (m *MockSupplierClient) GetShippingOptionsBySKU(ctx context.Context, sku string) ([]supplier.ShippingOption, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]supplier.ShippingOption), args.Error(1)
}
