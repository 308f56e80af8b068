package appointment

import (
	"context"
	"time"

	"github.com/mariananails/salon-booking/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetActiveService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Slot availability --------
	TakenSlots(
		ctx context.Context,
		date string,
	) ([]string, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	MarkDepositVerified(
		ctx context.Context,
		ap *models.Appointment,
		verifiedBy uint,
		verifiedAt time.Time,
	) error

	// -------- Listing --------
	ListUpcomingForUser(
		ctx context.Context,
		userID uint,
		fromDate string,
	) ([]models.Appointment, error)
}
