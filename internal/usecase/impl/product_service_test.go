package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	wishlistRepo *mockRepo.MockWishlistRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		WishlistRepo: wishlistRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		wishlistRepo: wishlistRepo,
	}
}

func TestProductService_Home(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	featured := []*entity.CatalogProduct{
		{Product: entity.Product{ID: 1, Featured: true, Active: true}},
	}
	categories := []*entity.CategoryFacet{
		{Category: entity.Category{ID: 1, Name: "Ropa"}, ProductCount: 4},
	}

	fx.productRepo.On("FindFeatured", ctx, 8).Return(featured, nil)
	fx.categoryRepo.On("FindActiveWithCounts", ctx, 6).Return(categories, nil)

	data, err := fx.service.Home(ctx)
	require.NoError(t, err)
	assert.Equal(t, featured, data.Featured)
	assert.Equal(t, categories, data.TopCategories)
}

func detailFixture(categoryID *int64) *entity.ProductDetail {
	return &entity.ProductDetail{
		CatalogProduct: entity.CatalogProduct{
			Product: entity.Product{
				ID:         10,
				Slug:       "camiseta-azul",
				Active:     true,
				CategoryID: categoryID,
			},
		},
	}
}

func TestProductService_Detail_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	categoryID := int64(3)
	viewer := uuid.New()

	related := []*entity.CatalogProduct{{Product: entity.Product{ID: 11}}}

	fx.productRepo.On("FindDetailBySlug", ctx, "camiseta-azul").
		Return(detailFixture(&categoryID), nil)
	fx.productRepo.On("IncrementViews", ctx, int64(10)).Return(nil)
	fx.productRepo.On("FindRelated", ctx, categoryID, int64(10), 4).Return(related, nil)
	fx.wishlistRepo.On("Contains", ctx, viewer, int64(10)).Return(true, nil)

	data, err := fx.service.Detail(ctx, "camiseta-azul", &viewer)
	require.NoError(t, err)
	assert.Equal(t, int64(10), data.Product.ID)
	assert.Equal(t, related, data.Related)
	assert.True(t, data.InWishlist)
}

func TestProductService_Detail_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("FindDetailBySlug", ctx, "desconocido").
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Detail(ctx, "desconocido", nil)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Detail_ViewCounterFailureIsIgnored(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("FindDetailBySlug", ctx, "camiseta-azul").
		Return(detailFixture(nil), nil)
	fx.productRepo.On("IncrementViews", ctx, int64(10)).
		Return(errors.New("deadlock"))

	data, err := fx.service.Detail(ctx, "camiseta-azul", nil)
	require.NoError(t, err)
	assert.Empty(t, data.Related)
	assert.False(t, data.InWishlist)
}

func TestProductService_Detail_NoCategorySkipsRelated(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("FindDetailBySlug", ctx, "camiseta-azul").
		Return(detailFixture(nil), nil)
	fx.productRepo.On("IncrementViews", ctx, int64(10)).Return(nil)

	_, err := fx.service.Detail(ctx, "camiseta-azul", nil)
	require.NoError(t, err)
	fx.productRepo.AssertNotCalled(t, "FindRelated", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_QuickView_InactiveIsNotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("FindAnnotatedByID", ctx, int64(5)).
		Return(&entity.CatalogProduct{Product: entity.Product{ID: 5, Active: false}}, nil)

	_, err := fx.service.QuickView(ctx, 5)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_QuickView_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := &entity.CatalogProduct{Product: entity.Product{ID: 5, Active: true}}
	fx.productRepo.On("FindAnnotatedByID", ctx, int64(5)).Return(product, nil)

	got, err := fx.service.QuickView(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestProductService_BulkInfo_EmptyIDs(t *testing.T) {
	fx := createTestProductService(t)

	infos, err := fx.service.BulkInfo(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, infos)
	fx.productRepo.AssertNotCalled(t, "FindActiveByIDs", mock.Anything, mock.Anything)
}

func TestProductService_BulkInfo_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	products := []*entity.CatalogProduct{
		{Product: entity.Product{ID: 1, Active: true}},
		{Product: entity.Product{ID: 2, Active: true}},
	}
	fx.productRepo.On("FindActiveByIDs", ctx, []int64{1, 2, 99}).Return(products, nil)

	infos, err := fx.service.BulkInfo(ctx, []int64{1, 2, 99})
	require.NoError(t, err)
	assert.Equal(t, products, infos)
}
