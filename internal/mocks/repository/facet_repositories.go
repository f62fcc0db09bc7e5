package repository

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a new mock and registers cleanup assertions.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) FindActiveWithCounts(ctx context.Context, limit int) ([]*entity.CategoryFacet, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CategoryFacet), args.Error(1)
}

// MockBrandRepository is a mock implementation of repository.BrandRepository.
type MockBrandRepository struct {
	mock.Mock
}

// NewMockBrandRepository creates a new mock and registers cleanup assertions.
func NewMockBrandRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBrandRepository {
	m := &MockBrandRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBrandRepository) FindWithActiveProducts(ctx context.Context) ([]*entity.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Brand), args.Error(1)
}
