package repository

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

// NewMockCartRepository creates a new mock and registers cleanup assertions.
func NewMockCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartRepository {
	m := &MockCartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartRepository) AddQuantity(ctx context.Context, owner entity.CartOwner, productID int64, qty int) error {
	return m.Called(ctx, owner, productID, qty).Error(0)
}

func (m *MockCartRepository) SetQuantity(ctx context.Context, owner entity.CartOwner, productID int64, qty int) error {
	return m.Called(ctx, owner, productID, qty).Error(0)
}

func (m *MockCartRepository) Remove(ctx context.Context, owner entity.CartOwner, productID int64) error {
	return m.Called(ctx, owner, productID).Error(0)
}

func (m *MockCartRepository) ListLines(ctx context.Context, owner entity.CartOwner) ([]*entity.CartLine, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CartLine), args.Error(1)
}

func (m *MockCartRepository) CountItems(ctx context.Context, owner entity.CartOwner) (int, error) {
	args := m.Called(ctx, owner)

	return args.Int(0), args.Error(1)
}

func (m *MockCartRepository) MergeAnonymous(ctx context.Context, sessionKey string, userID uuid.UUID) error {
	return m.Called(ctx, sessionKey, userID).Error(0)
}
