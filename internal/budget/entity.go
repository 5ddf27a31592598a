package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Type      Type            `gorm:"type:varchar(10);not null;index" json:"type"`
	StartDate time.Time       `gorm:"not null" json:"start_date"`
	EndDate   time.Time       `gorm:"not null" json:"end_date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Allocations []CategoryAllocation `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"allocations,omitempty"`
}

// CategoryAllocation splits a budget across categories. It exists mostly
// for the dashboard clear accounting and must be removed before its budget.
type CategoryAllocation struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BudgetID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"budget_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
