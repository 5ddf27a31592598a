package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("transaction not found")

type Repository interface {
	Create(t *Transaction) error
	FindByIDAndUser(id, userID uuid.UUID) (*Transaction, error)
	ListByUser(userID uuid.UUID, filter ListFilter) ([]Transaction, error)
	Update(t *Transaction) error
	Delete(id, userID uuid.UUID) error
	SumByTypeInRange(userID uuid.UUID, txType Type, from, to time.Time) (decimal.Decimal, error)
	RecentByType(userID uuid.UUID, txType Type, limit int) ([]Transaction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(t *Transaction) error {
	return r.db.Create(t).Error
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Transaction, error) {
	var t Transaction
	if err := r.db.Preload("Category").
		First(&t, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListByUser(userID uuid.UUID, filter ListFilter) ([]Transaction, error) {
	q := r.db.Preload("Category").Where("user_id = ?", userID)

	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date < ?", *filter.To)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var transactions []Transaction
	if err := q.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *repository) Update(t *Transaction) error {
	return r.db.Save(t).Error
}

func (r *repository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Transaction{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumByTypeInRange sums amounts for [from, to); an empty window returns zero.
func (r *repository) SumByTypeInRange(userID uuid.UUID, txType Type, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?", userID, txType, from, to).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

func (r *repository) RecentByType(userID uuid.UUID, txType Type, limit int) ([]Transaction, error) {
	var transactions []Transaction
	if err := r.db.Preload("Category").
		Where("user_id = ? AND type = ?", userID, txType).
		Order("date DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
