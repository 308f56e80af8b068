package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mariananails/salon-booking/internal/infra/cache"
	"github.com/mariananails/salon-booking/internal/models"
	"github.com/mariananails/salon-booking/internal/timezone"
)

// ======================================================
// OUTPUT
// ======================================================

type Stats struct {
	AppointmentsToday int64    `json:"appointments_today"`
	AppointmentsWeek  int64    `json:"appointments_week"`
	ServicesActive    int64    `json:"services_active"`
	PendingMessages   int64    `json:"pending_messages"`
	AverageRating     *float64 `json:"average_rating"`
	TotalClients      int64    `json:"total_clients"`
	PendingDeposits   int64    `json:"pending_deposits"`
}

type ServiceSummary struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	TotalAppointments int64  `json:"total_appointments"`
}

type Overview struct {
	Today   string `json:"today"`
	WeekEnd string `json:"week_end"`

	Stats Stats `json:"stats"`

	AppointmentsToday []models.Appointment    `json:"appointments_today"`
	UpcomingWeek      []models.Appointment    `json:"upcoming_week"`
	PendingMessages   []models.ContactMessage `json:"pending_messages"`
	RecentReviews     []models.Review         `json:"recent_reviews"`
	ServiceSummary    []ServiceSummary        `json:"service_summary"`
	PendingDeposits   []models.Appointment    `json:"pending_deposits"`

	GeneratedAt time.Time `json:"generated_at"`
}

// ======================================================
// USE CASE
// ======================================================

type GetOverview struct {
	db    *gorm.DB
	cache *cache.DashboardCache
}

func NewGetOverview(db *gorm.DB, c *cache.DashboardCache) *GetOverview {
	return &GetOverview{db: db, cache: c}
}

func (uc *GetOverview) Execute(ctx context.Context) (*Overview, error) {

	var cached Overview
	if uc.cache.Get(ctx, &cached) && cached.Today == timezone.TodayString() {
		return &cached, nil
	}

	today := timezone.TodayString()
	weekEnd := timezone.Today().AddDate(0, 0, 7).Format(timezone.DateLayout)

	out := Overview{
		Today:       today,
		WeekEnd:     weekEnd,
		GeneratedAt: timezone.Now(),
	}

	db := uc.db.WithContext(ctx)

	// ---- counters ----

	if err := db.Model(&models.Appointment{}).
		Where("appointment_date = ?", today).
		Count(&out.Stats.AppointmentsToday).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Appointment{}).
		Where("appointment_date > ? AND appointment_date <= ?", today, weekEnd).
		Count(&out.Stats.AppointmentsWeek).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Service{}).
		Where("active = ?", true).
		Count(&out.Stats.ServicesActive).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.ContactMessage{}).
		Where("resolved = ?", false).
		Count(&out.Stats.PendingMessages).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.User{}).
		Where("role <> ?", "staff").
		Count(&out.Stats.TotalClients).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Appointment{}).
		Where("deposit_status = ?", "pending").
		Count(&out.Stats.PendingDeposits).Error; err != nil {
		return nil, err
	}

	// AVG over zero visible reviews is NULL, hence the pointer.
	if err := db.Model(&models.Review{}).
		Where("visible = ?", true).
		Select("AVG(rating)").
		Scan(&out.Stats.AverageRating).Error; err != nil {
		return nil, err
	}

	// ---- bounded lists ----

	if err := db.Preload("User").Preload("Service").
		Where("appointment_date = ?", today).
		Order("appointment_time ASC").
		Find(&out.AppointmentsToday).Error; err != nil {
		return nil, err
	}

	if err := db.Preload("User").Preload("Service").
		Where("appointment_date > ? AND appointment_date <= ?", today, weekEnd).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&out.UpcomingWeek).Error; err != nil {
		return nil, err
	}

	if err := db.Where("resolved = ?", false).
		Order("created_at DESC").
		Limit(5).
		Find(&out.PendingMessages).Error; err != nil {
		return nil, err
	}

	if err := db.Preload("User").
		Order("created_at DESC").
		Limit(5).
		Find(&out.RecentReviews).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Service{}).
		Select("services.id, services.name, COUNT(appointments.id) AS total_appointments").
		Joins("LEFT JOIN appointments ON appointments.service_id = services.id").
		Group("services.id, services.name").
		Order("total_appointments DESC, services.name ASC").
		Limit(5).
		Scan(&out.ServiceSummary).Error; err != nil {
		return nil, err
	}

	if err := db.Preload("User").Preload("Service").
		Where("deposit_status = ?", "pending").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&out.PendingDeposits).Error; err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, &out)

	return &out, nil
}
