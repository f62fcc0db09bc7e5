package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerKind discriminates the identity a cart is scoped by.
type OwnerKind int

const (
	// OwnerUser scopes a cart by an authenticated user id.
	OwnerUser OwnerKind = iota + 1
	// OwnerAnonymous scopes a cart by an anonymous session key.
	OwnerAnonymous
)

// CartOwner is the tagged identity key that scopes a cart: exactly one of an
// authenticated user id or an anonymous session key. The zero value is
// invalid; construct through UserOwner or AnonymousOwner.
type CartOwner struct {
	kind       OwnerKind
	userID     uuid.UUID
	sessionKey string
}

// UserOwner returns the identity key of an authenticated user's cart.
func UserOwner(userID uuid.UUID) CartOwner {
	return CartOwner{kind: OwnerUser, userID: userID}
}

// AnonymousOwner returns the identity key of an anonymous session's cart.
func AnonymousOwner(sessionKey string) CartOwner {
	return CartOwner{kind: OwnerAnonymous, sessionKey: sessionKey}
}

// Kind returns the owner discriminator.
func (o CartOwner) Kind() OwnerKind {
	return o.kind
}

// UserID returns the owning user id; ok is false for anonymous owners.
func (o CartOwner) UserID() (uuid.UUID, bool) {
	return o.userID, o.kind == OwnerUser
}

// SessionKey returns the owning session key; ok is false for user owners.
func (o CartOwner) SessionKey() (string, bool) {
	return o.sessionKey, o.kind == OwnerAnonymous
}

// IsZero reports whether the owner was never set.
func (o CartOwner) IsZero() bool {
	return o.kind == 0
}

// CartItem is one product line in a cart, unique per (owner, product).
type CartItem struct {
	ID        int64
	Owner     CartOwner
	ProductID int64
	Quantity  int
	CreatedAt time.Time
}

// CartLine couples a cart item with the product it references, as read for
// cart listings. The product may be inactive; presentation hides it but the
// subtotal still counts it.
type CartLine struct {
	Item         CartItem
	Product      Product
	PrimaryImage string
}

// Subtotal is quantity times the product's effective price, in fixed point.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Item.Quantity)))
}
