package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the per-user wishlist use cases. Only
// authenticated users reach these; the delivery layer enforces that.
type WishlistUsecase interface {
	// Add saves a product to the user's wishlist. Idempotent: created is
	// false when the entry already existed.
	Add(ctx context.Context, userID uuid.UUID, productID int64) (created bool, err error)

	// Remove deletes the entry; removing an absent entry succeeds.
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error

	// Contains reports whether the product is on the user's wishlist.
	Contains(ctx context.Context, userID uuid.UUID, productID int64) (bool, error)

	// List returns all entries with their products, regardless of current
	// product activity.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistLine, error)
}
