package transaction

import (
	"time"

	"github.com/centavo/centavo-api/internal/category"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      decimal.Decimal    `gorm:"type:decimal(14,2);not null" json:"amount"`
	Type        Type               `gorm:"type:varchar(10);not null;index" json:"type"`
	Date        time.Time          `gorm:"not null;index" json:"date"`
	Description string             `json:"description,omitempty"`
	CategoryID  *uuid.UUID         `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *category.Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BillID      *uuid.UUID         `gorm:"type:uuid;index" json:"bill_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
