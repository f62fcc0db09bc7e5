package repository

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository defines cart item persistence scoped by a tagged owner
// identity. Upserts must be atomic per (owner, product): two concurrent adds
// of the same product compose into a single row.
type CartRepository interface {
	// AddQuantity upserts a cart item, adding qty to the existing quantity on
	// conflict.
	AddQuantity(ctx context.Context, owner entity.CartOwner, productID int64, qty int) error

	// SetQuantity upserts a cart item, setting the quantity to exactly qty.
	SetQuantity(ctx context.Context, owner entity.CartOwner, productID int64, qty int) error

	// Remove deletes the item if present; removing an absent item is not an
	// error.
	Remove(ctx context.Context, owner entity.CartOwner, productID int64) error

	// ListLines retrieves the owner's cart items joined with their products
	// and primary images.
	ListLines(ctx context.Context, owner entity.CartOwner) ([]*entity.CartLine, error)

	// CountItems returns the sum of quantities across the owner's items.
	CountItems(ctx context.Context, owner entity.CartOwner) (int, error)

	// MergeAnonymous folds an anonymous cart into a user cart, summing
	// quantities per product, then removes the anonymous rows.
	MergeAnonymous(ctx context.Context, sessionKey string, userID uuid.UUID) error
}
