package category

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("category not found")

type Repository interface {
	Create(c *Category) error
	FindByID(id uuid.UUID) (*Category, error)
	ListVisibleToUser(userID uuid.UUID) ([]Category, error)
	Update(c *Category) error
	Delete(id uuid.UUID) error
	SeedDefaults(defaults []Category) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Category) error {
	return r.db.Create(c).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Category, error) {
	var c Category
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListVisibleToUser(userID uuid.UUID) ([]Category, error) {
	var categories []Category
	if err := r.db.
		Where("is_default = ? OR user_id = ?", true, userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) Update(c *Category) error {
	return r.db.Save(c).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Category{}, "id = ?", id).Error
}

// SeedDefaults inserts the default categories once; existing names are
// left untouched.
func (r *repository) SeedDefaults(defaults []Category) error {
	for i := range defaults {
		var count int64
		if err := r.db.Model(&Category{}).
			Where("is_default = ? AND name = ?", true, defaults[i].Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if defaults[i].ID == uuid.Nil {
			defaults[i].ID = uuid.New()
		}
		defaults[i].IsDefault = true
		if err := r.db.Create(&defaults[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
