package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntryModel is the GORM-specific struct for the 'wishlist_entries'
// table. Uniqueness per (user, product) backs the idempotent add.
type WishlistEntryModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product;constraint:OnDelete:CASCADE"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_wishlist_user_product;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishlistEntryModel) TableName() string {
	return "wishlist_entries"
}
