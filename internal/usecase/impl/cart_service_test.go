package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	txManager   *mockRepo.MockTransactionManager
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.Factory = &mockRepo.MockRepositoryFactory{
		ProductRepo: productRepo,
		CartRepo:    cartRepo,
	}

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		TxManager:   txManager,
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		txManager:   txManager,
	}
}

func activeProduct(id int64, price string) *entity.Product {
	return &entity.Product{ID: id, Price: decimal.RequireFromString(price), Active: true}
}

func cartLine(productID int64, price string, qty int) *entity.CartLine {
	return &entity.CartLine{
		Item:    entity.CartItem{ProductID: productID, Quantity: qty},
		Product: *activeProduct(productID, price),
	}
}

func TestCartService_Add_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)
	owner := entity.AnonymousOwner("session-1")

	for _, qty := range []int{0, -3} {
		_, err := fx.service.Add(context.Background(), owner, 1, qty)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	}
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	owner := entity.AnonymousOwner("session-1")

	fx.productRepo.On("FindByID", ctx, int64(42)).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Add(ctx, owner, 42, 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_Add_InactiveProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	owner := entity.UserOwner(uuid.New())

	inactive := &entity.Product{ID: 7, Price: decimal.RequireFromString("10.00"), Active: false}
	fx.productRepo.On("FindByID", ctx, int64(7)).Return(inactive, nil)

	_, err := fx.service.Add(ctx, owner, 7, 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
}

func TestCartService_Add_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	owner := entity.AnonymousOwner("session-1")

	fx.productRepo.On("FindByID", ctx, int64(1)).Return(activeProduct(1, "19.99"), nil)
	fx.cartRepo.On("AddQuantity", ctx, owner, int64(1), 2).Return(nil)
	fx.cartRepo.On("ListLines", ctx, owner).Return([]*entity.CartLine{
		cartLine(1, "19.99", 2),
		cartLine(2, "5.00", 1),
	}, nil)

	summary, err := fx.service.Add(ctx, owner, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, "44.98", summary.Subtotal.StringFixed(2))
}

func TestCartService_Update_SetsExactQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	owner := entity.UserOwner(uuid.New())

	fx.productRepo.On("FindByID", ctx, int64(1)).Return(activeProduct(1, "10.00"), nil)
	fx.cartRepo.On("SetQuantity", ctx, owner, int64(1), 5).Return(nil)
	fx.cartRepo.On("ListLines", ctx, owner).Return([]*entity.CartLine{
		cartLine(1, "10.00", 5),
	}, nil)

	summary, err := fx.service.Update(ctx, owner, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Count)
	assert.Equal(t, "50.00", summary.Subtotal.StringFixed(2))
}

func TestCartService_Update_QuantityBelowOneRemoves(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	owner := entity.AnonymousOwner("session-1")

	fx.cartRepo.On("Remove", ctx, owner, int64(1)).Return(nil)
	fx.cartRepo.On("ListLines", ctx, owner).Return([]*entity.CartLine{}, nil)

	summary, err := fx.service.Update(ctx, owner, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Count)
	assert.True(t, summary.Subtotal.IsZero())
	fx.cartRepo.AssertNotCalled(t, "SetQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_Remove_AbsentItemSucceeds(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	owner := entity.AnonymousOwner("session-1")

	fx.cartRepo.On("Remove", ctx, owner, int64(9)).Return(nil)
	fx.cartRepo.On("ListLines", ctx, owner).Return([]*entity.CartLine{}, nil)

	summary, err := fx.service.Remove(ctx, owner, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
}

func TestCartService_List_CountsInactiveProducts(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	owner := entity.UserOwner(uuid.New())

	inactiveLine := cartLine(2, "30.00", 1)
	inactiveLine.Product.Active = false

	fx.cartRepo.On("ListLines", ctx, owner).Return([]*entity.CartLine{
		cartLine(1, "10.00", 2),
		inactiveLine,
	}, nil)

	cart, err := fx.service.List(ctx, owner)
	require.NoError(t, err)

	// Inactive products are hidden by presentation but still priced.
	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, "50.00", cart.Subtotal.StringFixed(2))
}

func TestCartService_Count(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	owner := entity.AnonymousOwner("session-1")

	fx.cartRepo.On("CountItems", ctx, owner).Return(7, nil)

	count, err := fx.service.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestCartService_Merge_RunsInTransaction(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)
	fx.cartRepo.On("MergeAnonymous", ctx, "session-1", userID).Return(nil)

	err := fx.service.Merge(ctx, "session-1", userID)
	require.NoError(t, err)
}

func TestCartService_Merge_Error(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("tx failed"))

	err := fx.service.Merge(ctx, "session-1", uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to merge anonymous cart")
}
