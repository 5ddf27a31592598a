package category

import (
	"time"

	"github.com/google/uuid"
)

// Category rows with a nil UserID are seeded defaults, visible to every
// user and never removed by clear operations.
type Category struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Icon      string     `json:"icon,omitempty"`
	Color     string     `json:"color,omitempty"`
	IsDefault bool       `gorm:"not null;default:false" json:"is_default"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
