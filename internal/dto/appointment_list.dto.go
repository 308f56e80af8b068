package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppointmentListDTO struct {
	ID              uint            `json:"id"`
	AppointmentDate string          `json:"appointment_date"`
	AppointmentTime string          `json:"appointment_time"`
	Status          string          `json:"status"`
	ServiceName     string          `json:"service_name"`
	ServicePrice    decimal.Decimal `json:"service_price"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"`
	DepositStatus   string          `json:"deposit_status"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}
