package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:800" json:"comment"`
	// No column default, same reasoning as Service.Active: a review
	// moderated into hiding must insert as visible = false.
	Visible bool `json:"visible"`

	CreatedAt time.Time `json:"created_at"`
}
