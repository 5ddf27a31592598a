package planitem

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemType string

const (
	// ItemTypeSavings mirrors savings goal contributions into the
	// dashboard totals. Other item types are reserved.
	ItemTypeSavings ItemType = "SAVINGS"
)

// PlanItem is a generic monthly ledger row. PlanType is the "YYYY-MM"
// period key of the bucket the row belongs to. SAVINGS rows carry the
// owning goal in GoalID; Description is only a display label.
type PlanItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ItemType    ItemType        `gorm:"type:varchar(20);not null;index" json:"item_type"`
	PlanType    string          `gorm:"type:varchar(7);not null;index" json:"plan_type"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Notes       string          `json:"notes,omitempty"`
	GoalID      *uuid.UUID      `gorm:"type:uuid;index" json:"goal_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
