package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// Exactly one of UserID or SessionKey is set, enforced by the
// chk_cart_items_owner_xor check constraint; uniqueness per identity and
// product comes from the idx_cart_items_user_product and
// idx_cart_items_session_product partial unique indexes the upsert
// statements target. All three are applied by the schema migration in the
// postgres package, since GORM tags cannot express them.
type CartItemModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	SessionKey *string    `gorm:"size:255;index"`
	ProductID  int64      `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	Quantity   int        `gorm:"not null;default:1;check:quantity >= 1"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
