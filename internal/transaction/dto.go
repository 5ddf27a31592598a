package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTransactionDTO struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        Type            `json:"type"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	BillID      *uuid.UUID      `json:"bill_id"`
}

type UpdateTransactionDTO struct {
	Amount      *decimal.Decimal `json:"amount"`
	Type        *Type            `json:"type"`
	Date        *time.Time       `json:"date"`
	Description *string          `json:"description"`
	CategoryID  *uuid.UUID       `json:"category_id"`
}

// ListFilter narrows ListByUser; zero values mean "no filter".
type ListFilter struct {
	From  *time.Time
	To    *time.Time
	Type  *Type
	Limit int
}
