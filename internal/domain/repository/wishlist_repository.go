package repository

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistRepository defines the per-user wishlist set. Add and Remove are
// idempotent at the store level: duplicate adds never create a second row
// and removing an absent entry is not an error.
type WishlistRepository interface {
	// Add inserts the (user, product) entry. created is false when the entry
	// already existed.
	Add(ctx context.Context, userID uuid.UUID, productID int64) (created bool, err error)

	// Remove deletes the entry if present.
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error

	// Contains reports whether the entry exists.
	Contains(ctx context.Context, userID uuid.UUID, productID int64) (bool, error)

	// ListLines retrieves all entries joined with their products regardless of
	// product activity, newest first.
	ListLines(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistLine, error)
}
