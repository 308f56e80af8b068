package appointment

import "strings"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Deposit Status
// ===============================

type DepositStatus string

const (
	DepositPending  DepositStatus = "pending"
	DepositVerified DepositStatus = "verified"
)

// InitialStatus is always pending/pending; confirmation only happens through
// deposit verification.
func InitialStatus() (Status, DepositStatus) {
	return StatusPending, DepositPending
}

// ===============================
// Payment Methods
// ===============================

type PaymentMethod string

const (
	PaymentTransfer    PaymentMethod = "transfer"
	PaymentMercadoPago PaymentMethod = "mercadopago"
	PaymentCash        PaymentMethod = "cash"
)

func IsValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentTransfer, PaymentMercadoPago, PaymentCash:
		return true
	}
	return false
}

// RequiresReference reports whether the method needs a payment reference.
// Cash is settled in person, no reference to reconcile.
func RequiresReference(m PaymentMethod) bool {
	return m == PaymentTransfer || m == PaymentMercadoPago
}

func HasReference(ref string) bool {
	return strings.TrimSpace(ref) != ""
}
