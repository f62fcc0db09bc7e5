package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user rating on a product. Only active reviews contribute to
// rating aggregates; moderation toggles the Active flag.
type Review struct {
	ID        int64
	ProductID int64
	UserID    uuid.UUID
	Rating    int // 1..5
	Comment   string
	Active    bool
	CreatedAt time.Time
}
