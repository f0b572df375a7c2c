package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is a product in the pharmacy store. Mutated only through admin CRUD.
type Medicine struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Category    string          `json:"category" gorm:"size:100;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Dosage      string          `json:"dosage,omitempty" gorm:"size:255"`
	Stock       int             `json:"stock" gorm:"not null;default:100"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"size:255"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
