// Package repository contains testify mocks for the domain repository
// interfaces.
package repository

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a new mock and registers cleanup assertions.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) FindPage(ctx context.Context, query repository.CatalogQuery) (*repository.ProductPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.ProductPage), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindDetailBySlug(ctx context.Context, slug string) (*entity.ProductDetail, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ProductDetail), args.Error(1)
}

func (m *MockProductRepository) FindAnnotatedByID(ctx context.Context, id int64) (*entity.CatalogProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CatalogProduct), args.Error(1)
}

func (m *MockProductRepository) FindActiveByIDs(ctx context.Context, ids []int64) ([]*entity.CatalogProduct, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CatalogProduct), args.Error(1)
}

func (m *MockProductRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.CatalogProduct, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CatalogProduct), args.Error(1)
}

func (m *MockProductRepository) FindRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]*entity.CatalogProduct, error) {
	args := m.Called(ctx, categoryID, excludeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CatalogProduct), args.Error(1)
}

func (m *MockProductRepository) IncrementViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
