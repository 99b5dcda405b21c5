package resources

import (
	"github.com/sukryu/pAdmin/pkg/store/schema"
)

type Category struct {
	schema.CoreEntity
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
}

type Post struct {
	schema.CoreEntity
	Title      string    `gorm:"not null" json:"title"`
	Slug       string    `gorm:"index" json:"slug"`
	Body       string    `json:"body"`
	Published  bool      `json:"published"`
	CategoryID *string   `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`
}

// Invoice has no Go descriptor. It is exposed through a YAML manifest.
type Invoice struct {
	schema.CoreEntity
	Number   string  `gorm:"uniqueIndex;not null" json:"number"`
	Customer string  `json:"customer"`
	Amount   float64 `json:"amount"`
	Paid     bool    `json:"paid"`
}

type AdminUser struct {
	schema.CoreEntity
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Password string `json:"-"`
}
