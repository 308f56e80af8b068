package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mariananails/salon-booking/internal/audit"
	dbpkg "github.com/mariananails/salon-booking/internal/db"
	"github.com/mariananails/salon-booking/internal/httperr"
	"github.com/mariananails/salon-booking/internal/infra/repository"
	"github.com/mariananails/salon-booking/internal/logging"
	"github.com/mariananails/salon-booking/internal/middleware"
	"github.com/mariananails/salon-booking/internal/models"
	"github.com/mariananails/salon-booking/internal/timezone"
	ucAppointment "github.com/mariananails/salon-booking/internal/usecase/appointment"
)

type bookingFixture struct {
	router *gin.Engine
	db     *gorm.DB
	user   *models.User
	svc    *models.Service
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	user := &models.User{
		Name:         "Caro",
		LastName:     "Pérez",
		Email:        fmt.Sprintf("caro-%d@example.com", time.Now().UnixNano()),
		PasswordHash: "x",
		Role:         "client",
	}
	require.NoError(t, db.Create(user).Error)

	svc := &models.Service{
		Name:        "Semipermanente",
		DurationMin: 60,
		Price:       decimal.RequireFromString("3000.00"),
		Active:      true,
	}
	require.NoError(t, db.Create(svc).Error)

	repo := repository.NewAppointmentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), logging.Default())

	h := NewBookingHandler(
		ucAppointment.NewBookAppointment(repo, dispatcher),
		ucAppointment.NewGetAvailability(repo),
		ucAppointment.NewListUpcomingAppointments(repo),
		nil,
	)

	r := gin.New()
	// stands in for AuthMiddleware, the JWT path has its own tests
	asUser := func(c *gin.Context) {
		c.Set(middleware.ContextUserID, user.ID)
		c.Set(middleware.ContextUserRole, user.Role)
	}
	r.GET("/reservas", asUser, h.Show)
	r.POST("/reservas", asUser, h.Create)

	return &bookingFixture{router: r, db: db, user: user, svc: svc}
}

func (f *bookingFixture) post(t *testing.T, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/reservas", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func tomorrowStr() string {
	return timezone.Today().AddDate(0, 0, 1).Format(timezone.DateLayout)
}

func TestBookingCreate_Success(t *testing.T) {
	f := newBookingFixture(t)

	w := f.post(t, gin.H{
		"service_id":       f.svc.ID,
		"appointment_date": tomorrowStr(),
		"appointment_time": "10:00",
		"payment_method":   "cash",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Appointment models.Appointment `json:"appointment"`
		Message     string             `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Appointment.Status)
	assert.Equal(t, "pending", resp.Appointment.DepositStatus)
	assert.True(t, resp.Appointment.DepositAmount.Equal(decimal.RequireFromString("1500.00")))
	assert.Contains(t, resp.Message, "seña")
}

func TestBookingCreate_PastDateFieldError(t *testing.T) {
	f := newBookingFixture(t)

	w := f.post(t, gin.H{
		"service_id":       f.svc.ID,
		"appointment_date": timezone.Today().AddDate(0, 0, -1).Format(timezone.DateLayout),
		"appointment_time": "10:00",
		"payment_method":   "cash",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "past_date", resp.Code)
	assert.Equal(t, "appointment_date", resp.Field)
	assert.Equal(t, "No podés reservar un turno en el pasado.", resp.Message)
}

func TestBookingCreate_ReferenceRequiredForTransfer(t *testing.T) {
	f := newBookingFixture(t)

	w := f.post(t, gin.H{
		"service_id":       f.svc.ID,
		"appointment_date": tomorrowStr(),
		"appointment_time": "10:00",
		"payment_method":   "transfer",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "reference_required", resp.Code)
	assert.Equal(t, "payment_reference", resp.Field)
}

func TestBookingCreate_SlotTakenConflict(t *testing.T) {
	f := newBookingFixture(t)

	first := f.post(t, gin.H{
		"service_id":       f.svc.ID,
		"appointment_date": tomorrowStr(),
		"appointment_time": "10:00",
		"payment_method":   "cash",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := f.post(t, gin.H{
		"service_id":       f.svc.ID,
		"appointment_date": tomorrowStr(),
		"appointment_time": "10:00",
		"payment_method":   "cash",
	})

	require.Equal(t, http.StatusConflict, second.Code)

	var resp httperr.HTTPError
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "slot_taken", resp.Code)
	assert.Empty(t, resp.Field)
}

func TestBookingCreate_MissingFieldsRejected(t *testing.T) {
	f := newBookingFixture(t)

	w := f.post(t, gin.H{"appointment_time": "10:00"})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Code)
}

func TestBookingShow_AvailabilityPayload(t *testing.T) {
	f := newBookingFixture(t)

	created := f.post(t, gin.H{
		"service_id":       f.svc.ID,
		"appointment_date": tomorrowStr(),
		"appointment_time": "10:00",
		"payment_method":   "cash",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	req := httptest.NewRequest(http.MethodGet, "/reservas?date="+tomorrowStr(), nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SelectedDate      string   `json:"selected_date"`
		AllSlots          []string `json:"all_slots"`
		AvailableSlots    []string `json:"available_slots"`
		DepositPercentage int      `json:"deposit_percentage"`
		Upcoming          []any    `json:"upcoming_appointments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, tomorrowStr(), resp.SelectedDate)
	assert.Len(t, resp.AllSlots, 10)
	assert.NotContains(t, resp.AvailableSlots, "10:00")
	assert.Equal(t, 50, resp.DepositPercentage)
	assert.Len(t, resp.Upcoming, 1)
}

func TestBookingShow_InvalidDateFallsBackToToday(t *testing.T) {
	f := newBookingFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/reservas?date=ayer", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SelectedDate string `json:"selected_date"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, timezone.TodayString(), resp.SelectedDate)
}
