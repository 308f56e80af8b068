package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Stored as ISO YYYY-MM-DD so the composite unique index behaves the
	// same under postgres and the sqlite used in tests.
	AppointmentDate string `gorm:"size:10;not null;uniqueIndex:uniq_appointment_slot" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null;uniqueIndex:uniq_appointment_slot" json:"appointment_time"`

	Notes string `gorm:"size:255" json:"notes"`

	Status string `gorm:"size:12;default:'pending'" json:"status"`

	DepositAmount decimal.Decimal `gorm:"type:decimal(8,2)" json:"deposit_amount"`
	DepositStatus string          `gorm:"size:12;default:'pending'" json:"deposit_status"`

	PaymentMethod    string `gorm:"size:20" json:"payment_method"`
	PaymentReference string `gorm:"size:120" json:"payment_reference"`

	DepositVerifiedByID *uint      `json:"deposit_verified_by_id"`
	DepositVerifiedBy   *User      `gorm:"foreignKey:DepositVerifiedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"deposit_verified_by,omitempty"`
	DepositVerifiedAt   *time.Time `json:"deposit_verified_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
