package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry marks a product as saved by a user; unique per (user, product).
type WishlistEntry struct {
	ID        int64
	UserID    uuid.UUID
	ProductID int64
	CreatedAt time.Time
}

// WishlistLine couples a wishlist entry with its product for listings.
// Entries are listed regardless of the product's current activity.
type WishlistLine struct {
	Entry        WishlistEntry
	Product      Product
	PrimaryImage string
}
