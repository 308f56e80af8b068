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

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID    uint
	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // slot label, HH:mm
	Notes string

	PaymentMethod    string
	PaymentReference string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Fecha: formato y "no en el pasado"
	// --------------------------------------------------
	day, err := timezone.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrField("appointment_date", "invalid_date")
	}

	if day.Before(timezone.Today()) {
		return nil, httperr.ErrField("appointment_date", "past_date")
	}

	// --------------------------------------------------
	// 2. Medio de pago y referencia
	// --------------------------------------------------
	if !domain.IsValidPaymentMethod(in.PaymentMethod) {
		return nil, httperr.ErrField("payment_method", "invalid_payment_method")
	}

	method := domain.PaymentMethod(in.PaymentMethod)
	if domain.RequiresReference(method) && !domain.HasReference(in.PaymentReference) {
		return nil, httperr.ErrField("payment_reference", "reference_required")
	}

	// --------------------------------------------------
	// 3. Horario dentro de la grilla fija
	// --------------------------------------------------
	if !domain.IsValidSlot(in.Time) {
		return nil, httperr.ErrField("appointment_time", "invalid_slot")
	}

	// --------------------------------------------------
	// 4. Servicio activo
	// --------------------------------------------------
	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Disponibilidad (chequeo indicativo)
	// --------------------------------------------------
	taken, err := uc.repo.TakenSlots(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	for _, t := range taken {
		if t == in.Time {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	// --------------------------------------------------
	// 6. Alta del turno (el índice único es el árbitro final)
	// --------------------------------------------------
	status, depositStatus := domain.InitialStatus()

	ap := &models.Appointment{
		UserID:           in.UserID,
		AppointmentDate:  in.Date,
		AppointmentTime:  in.Time,
		Notes:            in.Notes,
		Status:           string(status),
		DepositStatus:    string(depositStatus),
		PaymentMethod:    in.PaymentMethod,
		PaymentReference: in.PaymentReference,
	}
	domain.ApplyDeposit(ap, svc)

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: audit.ActionBookingConflict,
				Entity: "appointment",
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
