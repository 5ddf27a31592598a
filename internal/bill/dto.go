package bill

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBillDTO struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"due_date"`
}

type UpdateBillDTO struct {
	Name    *string          `json:"name"`
	Amount  *decimal.Decimal `json:"amount"`
	DueDate *time.Time       `json:"due_date"`
	Paid    *bool            `json:"paid"`
}
