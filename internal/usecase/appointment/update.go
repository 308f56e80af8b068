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

type UpdateAppointmentInput struct {
	AppointmentID uint
	StaffID       uint

	ServiceID *uint
	Date      *string
	Time      *string
	Notes     *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute lets staff reschedule an appointment or switch its service.
// Switching the service recomputes the deposit from the new price; moving the
// slot re-runs availability validation and stays subject to the unique index.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	newDate := ap.AppointmentDate
	newTime := ap.AppointmentTime
	if in.Date != nil {
		newDate = *in.Date
	}
	if in.Time != nil {
		newTime = *in.Time
	}

	slotChanged := newDate != ap.AppointmentDate || newTime != ap.AppointmentTime
	if slotChanged {
		day, err := timezone.ParseDate(newDate)
		if err != nil {
			return nil, httperr.ErrField("appointment_date", "invalid_date")
		}
		if day.Before(timezone.Today()) {
			return nil, httperr.ErrField("appointment_date", "past_date")
		}
		if !domain.IsValidSlot(newTime) {
			return nil, httperr.ErrField("appointment_time", "invalid_slot")
		}

		taken, err := uc.repo.TakenSlots(ctx, newDate)
		if err != nil {
			return nil, err
		}
		for _, t := range taken {
			if t == newTime {
				return nil, httperr.ErrBusiness("slot_taken")
			}
		}

		ap.AppointmentDate = newDate
		ap.AppointmentTime = newTime
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if in.ServiceID != nil && *in.ServiceID != ap.ServiceID {
		svc, err := uc.repo.GetActiveService(ctx, *in.ServiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.ErrBusiness("service_not_found")
			}
			return nil, err
		}
		domain.ApplyDeposit(ap, svc)
		ap.Service = *svc
	}

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.StaffID,
		Action:   audit.ActionAppointmentUpdated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
