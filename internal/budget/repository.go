package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("budget not found")

type Repository interface {
	Create(b *Budget) error
	FindByIDAndUser(id, userID uuid.UUID) (*Budget, error)
	ListByUser(userID uuid.UUID) ([]Budget, error)
	// ActiveByType returns the budget of the given type whose validity
	// window contains at. At most one active budget per type is assumed;
	// the newest window wins when that assumption is broken.
	ActiveByType(userID uuid.UUID, budgetType Type, at time.Time) (*Budget, error)
	Update(b *Budget) error
	Delete(id, userID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(b *Budget) error {
	return r.db.Create(b).Error
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Budget, error) {
	var b Budget
	if err := r.db.Preload("Allocations").
		First(&b, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]Budget, error) {
	var budgets []Budget
	if err := r.db.Preload("Allocations").
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *repository) ActiveByType(userID uuid.UUID, budgetType Type, at time.Time) (*Budget, error) {
	var b Budget
	err := r.db.
		Where("user_id = ? AND type = ? AND start_date <= ? AND end_date >= ?", userID, budgetType, at, at).
		Order("start_date DESC").
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(b *Budget) error {
	return r.db.Save(b).Error
}

func (r *repository) Delete(id, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&CategoryAllocation{}, "budget_id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		result := tx.Delete(&Budget{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
