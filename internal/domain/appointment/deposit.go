package appointment

import (
	"github.com/shopspring/decimal"

	"github.com/mariananails/salon-booking/internal/models"
)

// ===============================
// Deposit (seña)
// ===============================

var depositRate = decimal.NewFromFloat(0.50)

// Deposit is 50% of the service price, rounded to the cent. Round is
// half-away-from-zero, so 49.995 becomes 50.00 (never banker's rounding).
func Deposit(price decimal.Decimal) decimal.Decimal {
	return price.Mul(depositRate).Round(2)
}

// ApplyDeposit recomputes the deposit from the attached service. Every use
// case that persists an appointment with a service must call it, so changing
// the service always refreshes the amount.
func ApplyDeposit(ap *models.Appointment, svc *models.Service) {
	ap.ServiceID = svc.ID
	ap.DepositAmount = Deposit(svc.Price)
}
