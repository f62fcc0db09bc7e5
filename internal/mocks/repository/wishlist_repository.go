package repository

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWishlistRepository is a mock implementation of repository.WishlistRepository.
type MockWishlistRepository struct {
	mock.Mock
}

// NewMockWishlistRepository creates a new mock and registers cleanup assertions.
func NewMockWishlistRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWishlistRepository {
	m := &MockWishlistRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWishlistRepository) Add(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)

	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *MockWishlistRepository) Contains(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)

	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) ListLines(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.WishlistLine), args.Error(1)
}
