package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mariananails/salon-booking/internal/audit"
	domain "github.com/mariananails/salon-booking/internal/domain/appointment"
	"github.com/mariananails/salon-booking/internal/httperr"
	"github.com/mariananails/salon-booking/internal/models"
	"github.com/mariananails/salon-booking/internal/timezone"
)

type VerifyDeposit struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewVerifyDeposit(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *VerifyDeposit {
	return &VerifyDeposit{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the deposit as verified and confirms the appointment,
// recording who verified and when. Only the four verification columns are
// written. Re-verifying an already verified appointment simply overwrites the
// verifier and timestamp.
func (uc *VerifyDeposit) Execute(
	ctx context.Context,
	appointmentID uint,
	staffID uint,
) (*models.Appointment, error) {

	actor, err := uc.repo.GetUserByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	now := timezone.Now()
	if err := uc.repo.MarkDepositVerified(ctx, ap, staffID, now); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   audit.ActionDepositVerified,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"deposit_amount": ap.DepositAmount,
			"client":         ap.User.DisplayName(),
		},
	})

	return ap, nil
}
