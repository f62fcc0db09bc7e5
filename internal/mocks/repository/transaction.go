package repository

import (
	"context"

	"tienda/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the given function against the configured factory so tests
// exercise the transactional path without a database.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

// NewMockTransactionManager creates a new mock and registers cleanup assertions.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory
// returning fixed repository mocks.
type MockRepositoryFactory struct {
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	WishlistRepo repository.WishlistRepository
}

func (f *MockRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.ProductRepo
}

func (f *MockRepositoryFactory) NewCartRepository() repository.CartRepository {
	return f.CartRepo
}

func (f *MockRepositoryFactory) NewWishlistRepository() repository.WishlistRepository {
	return f.WishlistRepo
}
