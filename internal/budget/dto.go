package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationDTO struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type CreateBudgetDTO struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        Type            `json:"type"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Allocations []AllocationDTO `json:"allocations"`
}

type UpdateBudgetDTO struct {
	Amount    *decimal.Decimal `json:"amount"`
	StartDate *time.Time       `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
}
