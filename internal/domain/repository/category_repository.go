package repository

import (
	"context"

	"tienda/internal/domain/entity"
)

// CategoryRepository defines reads over the category facet universe.
type CategoryRepository interface {
	// FindActiveWithCounts retrieves active categories annotated with their
	// active-product counts, ordered by rank then name. limit <= 0 means all.
	// The counts deliberately ignore any other catalog filters.
	FindActiveWithCounts(ctx context.Context, limit int) ([]*entity.CategoryFacet, error)
}

// BrandRepository defines reads over the brand facet universe.
type BrandRepository interface {
	// FindWithActiveProducts retrieves brands having at least one active
	// product, ordered by name.
	FindWithActiveProducts(ctx context.Context) ([]*entity.Brand, error)
}
