package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// HomeData feeds the storefront landing page.
type HomeData struct {
	Featured      []*entity.CatalogProduct
	TopCategories []*entity.CategoryFacet
}

// ProductDetailData feeds the product detail page.
type ProductDetailData struct {
	Product    *entity.ProductDetail
	Related    []*entity.CatalogProduct
	InWishlist bool
}

// ProductUsecase defines product presentation use cases outside the catalog
// listing.
type ProductUsecase interface {
	// Home returns featured products and top categories for the landing page.
	Home(ctx context.Context) (*HomeData, error)

	// Detail returns the detail page data for an active product and bumps its
	// view counter best-effort. viewer, when set, resolves the wishlist flag.
	Detail(ctx context.Context, slug string, viewer *uuid.UUID) (*ProductDetailData, error)

	// QuickView returns a single annotated active product.
	QuickView(ctx context.Context, id int64) (*entity.CatalogProduct, error)

	// BulkInfo returns annotated active products for an id list; unknown and
	// inactive ids are skipped.
	BulkInfo(ctx context.Context, ids []int64) ([]*entity.CatalogProduct, error)
}
