// Package usecase contains testify mocks for the use case interfaces.
package usecase

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUsecase is a mock implementation of usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) List(ctx context.Context, query repository.CatalogQuery) (*usecase.CatalogPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CatalogPage), args.Error(1)
}

// MockProductUsecase is a mock implementation of usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

func (m *MockProductUsecase) Home(ctx context.Context) (*usecase.HomeData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.HomeData), args.Error(1)
}

func (m *MockProductUsecase) Detail(ctx context.Context, slug string, viewer *uuid.UUID) (*usecase.ProductDetailData, error) {
	args := m.Called(ctx, slug, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ProductDetailData), args.Error(1)
}

func (m *MockProductUsecase) QuickView(ctx context.Context, id int64) (*entity.CatalogProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CatalogProduct), args.Error(1)
}

func (m *MockProductUsecase) BulkInfo(ctx context.Context, ids []int64) ([]*entity.CatalogProduct, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CatalogProduct), args.Error(1)
}

// MockCartUsecase is a mock implementation of usecase.CartUsecase.
type MockCartUsecase struct {
	mock.Mock
}

func (m *MockCartUsecase) Add(ctx context.Context, owner entity.CartOwner, productID int64, qty int) (*usecase.CartSummary, error) {
	args := m.Called(ctx, owner, productID, qty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CartSummary), args.Error(1)
}

func (m *MockCartUsecase) Update(ctx context.Context, owner entity.CartOwner, productID int64, qty int) (*usecase.CartSummary, error) {
	args := m.Called(ctx, owner, productID, qty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CartSummary), args.Error(1)
}

func (m *MockCartUsecase) Remove(ctx context.Context, owner entity.CartOwner, productID int64) (*usecase.CartSummary, error) {
	args := m.Called(ctx, owner, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CartSummary), args.Error(1)
}

func (m *MockCartUsecase) List(ctx context.Context, owner entity.CartOwner) (*usecase.CartView, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.CartView), args.Error(1)
}

func (m *MockCartUsecase) Count(ctx context.Context, owner entity.CartOwner) (int, error) {
	args := m.Called(ctx, owner)

	return args.Int(0), args.Error(1)
}

func (m *MockCartUsecase) Merge(ctx context.Context, sessionKey string, userID uuid.UUID) error {
	return m.Called(ctx, sessionKey, userID).Error(0)
}

// MockWishlistUsecase is a mock implementation of usecase.WishlistUsecase.
type MockWishlistUsecase struct {
	mock.Mock
}

func (m *MockWishlistUsecase) Add(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)

	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistUsecase) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *MockWishlistUsecase) Contains(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)

	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.WishlistLine), args.Error(1)
}
