// Package impl contains the concrete use case implementations.
package impl

import (
	"context"

	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	BrandRepo    repository.BrandRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		brandRepo:    params.BrandRepo,
	}
}

// List executes the catalog query and assembles the page with its facet
// universe. The facets deliberately ignore the query's filters: they always
// describe all active categories (with active-product counts) and all brands
// that have at least one active product.
func (s *catalogService) List(ctx context.Context, query repository.CatalogQuery) (*usecase.CatalogPage, error) {
	query.Normalize()

	page, err := s.productRepo.FindPage(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query catalog page")
	}

	categories, err := s.categoryRepo.FindActiveWithCounts(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load category facets")
	}

	brands, err := s.brandRepo.FindWithActiveProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load brand facets")
	}

	return &usecase.CatalogPage{
		Products:   page.Products,
		Pagination: usecase.NewPagination(page.Total, query.ItemsPerPage, page.Page),
		Categories: categories,
		Brands:     brands,
	}, nil
}
