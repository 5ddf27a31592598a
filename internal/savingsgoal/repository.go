package savingsgoal

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	Create(g *SavingsGoal) error
	// FindByID loads a goal regardless of owner; ownership is checked by
	// the service so that "not found" and "forbidden" stay distinguishable.
	FindByID(id uuid.UUID) (*SavingsGoal, error)
	ListByUser(userID uuid.UUID, completed *bool) ([]SavingsGoal, error)
	Update(g *SavingsGoal) error
	SumCurrentAmounts(userID uuid.UUID) (decimal.Decimal, error)
	SumTargetAmounts(userID uuid.UUID) (decimal.Decimal, error)
	ListOwnerIDs() ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(g *SavingsGoal) error {
	return r.db.Create(g).Error
}

func (r *repository) FindByID(id uuid.UUID) (*SavingsGoal, error) {
	var g SavingsGoal
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) ListByUser(userID uuid.UUID, completed *bool) ([]SavingsGoal, error) {
	q := r.db.Where("user_id = ?", userID)
	if completed != nil {
		q = q.Where("completed = ?", *completed)
	}

	var goals []SavingsGoal
	if err := q.Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) Update(g *SavingsGoal) error {
	return r.db.Save(g).Error
}

func (r *repository) SumCurrentAmounts(userID uuid.UUID) (decimal.Decimal, error) {
	return r.sum(userID, "current_amount")
}

func (r *repository) SumTargetAmounts(userID uuid.UUID) (decimal.Decimal, error) {
	return r.sum(userID, "target_amount")
}

func (r *repository) sum(userID uuid.UUID, column string) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&SavingsGoal{}).
		Select("COALESCE(SUM("+column+"), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

func (r *repository) ListOwnerIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&SavingsGoal{}).
		Distinct("user_id").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
