package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/mariananails/salon-booking/internal/domain/appointment"
	"github.com/mariananails/salon-booking/internal/httperr"
	"github.com/mariananails/salon-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", serviceID, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Slot availability
// --------------------------------------------------

// TakenSlots returns every appointment_time recorded for the date. There is
// intentionally no status filter: a cancelled appointment still blocks its
// slot, matching the behavior staff rely on today.
func (r *AppointmentGormRepository) TakenSlots(
	ctx context.Context,
	date string,
) ([]string, error) {

	var taken []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date = ?", date).
		Pluck("appointment_time", &taken).Error; err != nil {
		return nil, err
	}
	return taken, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment inserts the row. The composite unique index on
// (appointment_date, appointment_time) is the final race arbiter: when two
// submissions pass the advisory check, the loser gets slot_conflict here.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("slot_conflict")
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("slot_conflict")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

// MarkDepositVerified writes exactly the four verification columns. Other
// fields are left untouched even if the row changed since it was loaded.
func (r *AppointmentGormRepository) MarkDepositVerified(
	ctx context.Context,
	ap *models.Appointment,
	verifiedBy uint,
	verifiedAt time.Time,
) error {

	ap.DepositStatus = string(domain.DepositVerified)
	ap.Status = string(domain.StatusConfirmed)
	ap.DepositVerifiedByID = &verifiedBy
	ap.DepositVerifiedAt = &verifiedAt

	return r.db.WithContext(ctx).
		Model(ap).
		Select("deposit_status", "status", "deposit_verified_by_id", "deposit_verified_at").
		Updates(map[string]any{
			"deposit_status":         ap.DepositStatus,
			"status":                 ap.Status,
			"deposit_verified_by_id": ap.DepositVerifiedByID,
			"deposit_verified_at":    ap.DepositVerifiedAt,
		}).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListUpcomingForUser(
	ctx context.Context,
	userID uint,
	fromDate string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ? AND appointment_date >= ?", userID, fromDate).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
