package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartSummary is the aggregate returned after every cart mutation.
type CartSummary struct {
	Count    int             // Sum of quantities across items.
	Subtotal decimal.Decimal // Sum of quantity * effective price, fixed point.
}

// CartView is the full cart listing.
type CartView struct {
	Lines    []*entity.CartLine
	Subtotal decimal.Decimal
}

// CartUsecase defines the cart aggregation use cases. Every operation is
// scoped by a tagged owner identity (user id or anonymous session key).
type CartUsecase interface {
	// Add upserts qty units of a product into the cart; concurrent adds of
	// the same product compose. The product must be active.
	Add(ctx context.Context, owner entity.CartOwner, productID int64, qty int) (*CartSummary, error)

	// Update sets the quantity to exactly qty; qty < 1 removes the item.
	Update(ctx context.Context, owner entity.CartOwner, productID int64, qty int) (*CartSummary, error)

	// Remove deletes the item; removing an absent item succeeds.
	Remove(ctx context.Context, owner entity.CartOwner, productID int64) (*CartSummary, error)

	// List returns the cart lines with subtotals.
	List(ctx context.Context, owner entity.CartOwner) (*CartView, error)

	// Count returns the sum of quantities.
	Count(ctx context.Context, owner entity.CartOwner) (int, error)

	// Merge folds an anonymous cart into a user cart on login, summing
	// quantities per product, atomically.
	Merge(ctx context.Context, sessionKey string, userID uuid.UUID) error
}
