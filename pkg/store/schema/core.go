package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoreEntity is embedded by every model managed through the admin panel.
type CoreEntity struct {
	ID        string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a random id to new rows.
func (e *CoreEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

