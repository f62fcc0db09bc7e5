package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table. Rows
// cascade with their product and user.
type ReviewModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ProductID int64     `gorm:"not null;index;constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	Rating    int       `gorm:"not null;default:5;check:rating >= 1 AND rating <= 5"`
	Comment   string    `gorm:"type:text"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
