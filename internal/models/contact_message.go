package models

import "time"

type ContactMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:120;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:25" json:"phone"`
	Message string `gorm:"size:1000;not null" json:"message"`

	Resolved bool `gorm:"default:false" json:"resolved"`

	CreatedAt time.Time `json:"created_at"`
}
