package planitem

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	ListSavingsByPeriod(userID uuid.UUID, periodKey string) ([]PlanItem, error)
	// SumSavings totals every SAVINGS row for the user across all periods.
	SumSavings(userID uuid.UUID) (decimal.Decimal, error)
	// SumSavingsByPeriod totals SAVINGS rows for one "YYYY-MM" bucket.
	SumSavingsByPeriod(userID uuid.UUID, periodKey string) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListSavingsByPeriod(userID uuid.UUID, periodKey string) ([]PlanItem, error) {
	var items []PlanItem
	if err := r.db.
		Where("user_id = ? AND item_type = ? AND plan_type = ?", userID, ItemTypeSavings, periodKey).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SumSavings(userID uuid.UUID) (decimal.Decimal, error) {
	return r.sum(r.db.Where("user_id = ? AND item_type = ?", userID, ItemTypeSavings))
}

func (r *repository) SumSavingsByPeriod(userID uuid.UUID, periodKey string) (decimal.Decimal, error) {
	return r.sum(r.db.Where("user_id = ? AND item_type = ? AND plan_type = ?", userID, ItemTypeSavings, periodKey))
}

func (r *repository) sum(q *gorm.DB) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := q.Model(&PlanItem{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}
