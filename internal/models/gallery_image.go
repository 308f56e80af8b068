package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:120;not null" json:"title"`
	ObjectKey   string `gorm:"size:255;not null" json:"-"`
	URL         string `gorm:"size:500;not null" json:"url"`
	Description string `gorm:"size:255" json:"description"`
	Featured    bool   `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
}
