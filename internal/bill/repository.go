package bill

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("bill not found")

type Repository interface {
	Create(b *Bill) error
	FindByIDAndUser(id, userID uuid.UUID) (*Bill, error)
	ListByUser(userID uuid.UUID) ([]Bill, error)
	Update(b *Bill) error
	Delete(id, userID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(b *Bill) error {
	return r.db.Create(b).Error
}

func (r *repository) FindByIDAndUser(id, userID uuid.UUID) (*Bill, error) {
	var b Bill
	if err := r.db.First(&b, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByUser(userID uuid.UUID) ([]Bill, error) {
	var bills []Bill
	if err := r.db.
		Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *repository) Update(b *Bill) error {
	return r.db.Save(b).Error
}

func (r *repository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&Bill{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
