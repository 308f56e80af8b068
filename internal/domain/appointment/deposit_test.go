package appointment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mariananails/salon-booking/internal/models"
)

func TestDeposit(t *testing.T) {
	cases := []struct {
		price string
		want  string
	}{
		{"3000.00", "1500.00"},
		// 99.99 * 0.5 = 49.995 -> half-up -> 50.00 (not banker's 49.99~50.00 tie)
		{"99.99", "50.00"},
		{"0.00", "0.00"},
		{"0.01", "0.01"}, // 0.005 rounds up
		{"1500.50", "750.25"},
		{"2499.99", "1250.00"},
	}

	for _, tc := range cases {
		price := decimal.RequireFromString(tc.price)
		got := Deposit(price)
		assert.Equal(t, tc.want, got.StringFixed(2), "price %s", tc.price)
	}
}

func TestDeposit_Deterministic(t *testing.T) {
	price := decimal.RequireFromString("1234.56")

	first := Deposit(price)
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(Deposit(price)))
	}
}

func TestApplyDeposit(t *testing.T) {
	svc := &models.Service{
		ID:    7,
		Price: decimal.RequireFromString("3000.00"),
	}

	ap := &models.Appointment{}
	ApplyDeposit(ap, svc)

	assert.Equal(t, uint(7), ap.ServiceID)
	assert.Equal(t, "1500.00", ap.DepositAmount.StringFixed(2))
}

func TestApplyDeposit_RecomputesOnServiceChange(t *testing.T) {
	ap := &models.Appointment{}

	ApplyDeposit(ap, &models.Service{ID: 1, Price: decimal.RequireFromString("3000.00")})
	assert.Equal(t, "1500.00", ap.DepositAmount.StringFixed(2))

	ApplyDeposit(ap, &models.Service{ID: 2, Price: decimal.RequireFromString("4500.00")})
	assert.Equal(t, uint(2), ap.ServiceID)
	assert.Equal(t, "2250.00", ap.DepositAmount.StringFixed(2))
}
