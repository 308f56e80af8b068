package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mariananails/salon-booking/internal/domain/appointment"
	"github.com/mariananails/salon-booking/internal/models"
)

func TestGetAvailability_EmptyDay(t *testing.T) {
	db := newTestDB(t)
	repo := newRepo(t, db)

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), futureDate(2))
	require.NoError(t, err)

	assert.Equal(t, futureDate(2), out.Date)
	assert.Equal(t, domain.Slots(), out.AllSlots)
	assert.Equal(t, domain.Slots(), out.Available, "an empty day offers the whole timetable")
}

func TestGetAvailability_BookedSlotsRemoved(t *testing.T) {
	db := newTestDB(t)
	repo := newRepo(t, db)

	client := seedUser(t, db, "client")
	svc := seedService(t, db, "3000.00")

	date := futureDate(2)
	seedAppointment(t, db, repo, client.ID, svc.ID, date, "09:00")
	seedAppointment(t, db, repo, client.ID, svc.ID, date, "14:00")

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), date)
	require.NoError(t, err)

	assert.NotContains(t, out.Available, "09:00")
	assert.NotContains(t, out.Available, "14:00")
	assert.Len(t, out.Available, len(domain.Slots())-2)

	// Order follows the timetable, not insertion order.
	assert.Equal(t, []string{"10:00", "11:00", "12:00", "13:00", "15:00", "16:00", "17:00", "18:00"}, out.Available)
}

func TestGetAvailability_OtherDayUnaffected(t *testing.T) {
	db := newTestDB(t)
	repo := newRepo(t, db)

	client := seedUser(t, db, "client")
	svc := seedService(t, db, "3000.00")

	seedAppointment(t, db, repo, client.ID, svc.ID, futureDate(2), "09:00")

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), futureDate(3))
	require.NoError(t, err)

	assert.Equal(t, domain.Slots(), out.Available)
}

func TestGetAvailability_CancelledAppointmentStillBlocks(t *testing.T) {
	db := newTestDB(t)
	repo := newRepo(t, db)

	client := seedUser(t, db, "client")
	svc := seedService(t, db, "3000.00")

	date := futureDate(2)
	ap := seedAppointment(t, db, repo, client.ID, svc.ID, date, "09:00")
	require.NoError(t, db.Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Update("status", string(domain.StatusCancelled)).Error)

	uc := NewGetAvailability(repo)
	out, err := uc.Execute(context.Background(), date)
	require.NoError(t, err)

	assert.NotContains(t, out.Available, "09:00", "a cancelled appointment keeps its slot occupied")
}
