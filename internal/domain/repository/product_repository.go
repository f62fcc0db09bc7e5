// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductPage is one page of a catalog listing. Page is the effective page
// number after out-of-range coercion.
type ProductPage struct {
	Products []*entity.CatalogProduct
	Total    int64
	Page     int
}

// ProductRepository defines the interface for product-related database
// operations. The catalog page query must evaluate effective price
// (COALESCE of discount and base price) and review aggregates inside the
// store so filtering, sorting and pagination stay consistent.
type ProductRepository interface {
	// FindPage runs the catalog query: filters, sort, pagination and review
	// aggregation in a single store round trip plus an O(page) image lookup.
	// An out-of-range page is coerced to the nearest valid page.
	FindPage(ctx context.Context, query CatalogQuery) (*ProductPage, error)

	// FindByID retrieves a product by primary key.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindDetailBySlug retrieves an active product with category, brand,
	// images, attributes and review aggregates for the detail page.
	FindDetailBySlug(ctx context.Context, slug string) (*entity.ProductDetail, error)

	// FindAnnotatedByID retrieves a single active product with aggregates and
	// primary image, as used by the quick view.
	FindAnnotatedByID(ctx context.Context, id int64) (*entity.CatalogProduct, error)

	// FindActiveByIDs retrieves active products by id list with aggregates and
	// primary image; missing and inactive ids are silently skipped.
	FindActiveByIDs(ctx context.Context, ids []int64) ([]*entity.CatalogProduct, error)

	// FindFeatured retrieves up to limit active featured products in default
	// catalog order.
	FindFeatured(ctx context.Context, limit int) ([]*entity.CatalogProduct, error)

	// FindRelated retrieves up to limit active products sharing a category,
	// excluding the given product.
	FindRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]*entity.CatalogProduct, error)

	// IncrementViews bumps the product view counter. Best effort: lost
	// increments are acceptable.
	IncrementViews(ctx context.Context, id int64) error
}
