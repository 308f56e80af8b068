package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:120;not null" json:"name"`
	Description string          `gorm:"size:500" json:"description"`
	DurationMin int             `gorm:"default:60" json:"duration_min"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2)" json:"price"`
	// No column default: gorm drops zero-valued fields on insert when one
	// is set, so a service created inactive would come back active.
	Active bool `json:"active"`

	DisplayOrder int `gorm:"default:0" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
