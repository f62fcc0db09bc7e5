package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	brandRepo    *mockRepo.MockBrandRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	brandRepo := mockRepo.NewMockBrandRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		BrandRepo:    brandRepo,
	})

	return catalogServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}
}

func TestCatalogService_List_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	products := []*entity.CatalogProduct{
		{Product: entity.Product{ID: 2, Name: "Camiseta", Active: true}},
		{Product: entity.Product{ID: 1, Name: "Pantalón", Active: true}},
	}
	categories := []*entity.CategoryFacet{
		{Category: entity.Category{ID: 1, Name: "Ropa"}, ProductCount: 2},
	}
	brands := []*entity.Brand{{ID: 1, Name: "Acme"}}

	fx.productRepo.On("FindPage", ctx, mock.AnythingOfType("repository.CatalogQuery")).
		Return(&repository.ProductPage{Products: products, Total: 25, Page: 2}, nil)
	fx.categoryRepo.On("FindActiveWithCounts", ctx, 0).Return(categories, nil)
	fx.brandRepo.On("FindWithActiveProducts", ctx).Return(brands, nil)

	page, err := fx.service.List(ctx, repository.CatalogQuery{Page: 2, ItemsPerPage: 12})
	require.NoError(t, err)

	assert.Equal(t, products, page.Products)
	assert.Equal(t, categories, page.Categories)
	assert.Equal(t, brands, page.Brands)
	assert.Equal(t, 2, page.Pagination.Number)
	assert.Equal(t, 3, page.Pagination.NumPages)
	assert.Equal(t, int64(25), page.Pagination.Total)
	assert.True(t, page.Pagination.HasPrevious)
	assert.True(t, page.Pagination.HasNext)
}

func TestCatalogService_List_NormalizesQuery(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("FindPage", ctx, mock.MatchedBy(func(q repository.CatalogQuery) bool {
		return q.ItemsPerPage == repository.DefaultItemsPerPage &&
			q.Page == 1 &&
			q.Sort == repository.SortDefault &&
			q.Search == "camiseta"
	})).Return(&repository.ProductPage{Products: nil, Total: 0, Page: 1}, nil)
	fx.categoryRepo.On("FindActiveWithCounts", ctx, 0).Return([]*entity.CategoryFacet{}, nil)
	fx.brandRepo.On("FindWithActiveProducts", ctx).Return([]*entity.Brand{}, nil)

	page, err := fx.service.List(ctx, repository.CatalogQuery{Search: "  camiseta  "})
	require.NoError(t, err)

	// An empty result still reports a single page.
	assert.Equal(t, 1, page.Pagination.NumPages)
	assert.False(t, page.Pagination.HasNext)
}

func TestCatalogService_List_CoercedPageDrivesPagination(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	// The store coerces an out-of-range page; pagination reflects the
	// effective page, not the requested one.
	fx.productRepo.On("FindPage", ctx, mock.AnythingOfType("repository.CatalogQuery")).
		Return(&repository.ProductPage{Products: nil, Total: 24, Page: 2}, nil)
	fx.categoryRepo.On("FindActiveWithCounts", ctx, 0).Return([]*entity.CategoryFacet{}, nil)
	fx.brandRepo.On("FindWithActiveProducts", ctx).Return([]*entity.Brand{}, nil)

	page, err := fx.service.List(ctx, repository.CatalogQuery{Page: 99, ItemsPerPage: 12})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Pagination.Number)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrevious)
}

func TestCatalogService_List_ProductQueryError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("FindPage", ctx, mock.AnythingOfType("repository.CatalogQuery")).
		Return(nil, errors.New("db down"))

	_, err := fx.service.List(ctx, repository.CatalogQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query catalog page")
}

func TestCatalogService_List_FacetError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.productRepo.On("FindPage", ctx, mock.AnythingOfType("repository.CatalogQuery")).
		Return(&repository.ProductPage{Total: 0, Page: 1}, nil)
	fx.categoryRepo.On("FindActiveWithCounts", ctx, 0).
		Return(nil, errors.New("db down"))

	_, err := fx.service.List(ctx, repository.CatalogQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load category facets")
}
