package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mariananails/salon-booking/internal/httperr"
	"github.com/mariananails/salon-booking/internal/infra/cache"
	"github.com/mariananails/salon-booking/internal/middleware"
	"github.com/mariananails/salon-booking/internal/timezone"
	ucAppointment "github.com/mariananails/salon-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	bookUC         *ucAppointment.BookAppointment
	availabilityUC *ucAppointment.GetAvailability
	listUC         *ucAppointment.ListUpcomingAppointments
	cache          *cache.DashboardCache
}

func NewBookingHandler(
	bookUC *ucAppointment.BookAppointment,
	availabilityUC *ucAppointment.GetAvailability,
	listUC *ucAppointment.ListUpcomingAppointments,
	dashCache *cache.DashboardCache,
) *BookingHandler {
	return &BookingHandler{
		bookUC:         bookUC,
		availabilityUC: availabilityUC,
		listUC:         listUC,
		cache:          dashCache,
	}
}

// ======================================================
// DTOs
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID        uint   `json:"service_id" binding:"required"`
	Date             string `json:"appointment_date" binding:"required"` // YYYY-MM-DD
	Time             string `json:"appointment_time" binding:"required"` // HH:mm
	Notes            string `json:"notes"`
	PaymentMethod    string `json:"payment_method" binding:"required"`
	PaymentReference string `json:"payment_reference"`
}

// ======================================================
// GET /reservas
// ======================================================

// Show returns the booking page payload: the timetable for the requested
// date plus the caller's upcoming appointments. An invalid or past ?date
// falls back to today.
func (h *BookingHandler) Show(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	selected := timezone.TodayString()
	if dateStr := c.Query("date"); dateStr != "" {
		if day, err := timezone.ParseDate(dateStr); err == nil && !day.Before(timezone.Today()) {
			selected = dateStr
		}
	}

	availability, err := h.availabilityUC.Execute(c.Request.Context(), selected)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Error al calcular los horarios.")
		return
	}

	upcoming, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar tus turnos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selected_date":         availability.Date,
		"all_slots":             availability.AllSlots,
		"available_slots":       availability.Available,
		"upcoming_appointments": upcoming,
		"today":                 timezone.TodayString(),
		"deposit_percentage":    50,
	})
}

// ======================================================
// POST /reservas
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		UserID:           userID,
		ServiceID:        req.ServiceID,
		Date:             req.Date,
		Time:             req.Time,
		Notes:            req.Notes,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{
		"appointment": ap,
		"message":     "Tu turno fue reservado. Verificaremos la seña del 50% y te confirmaremos a la brevedad.",
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingErrors(c *gin.Context, err error) {
	if fe, ok := httperr.AsField(err); ok {
		switch fe.Code {
		case "past_date":
			httperr.WriteField(c, http.StatusBadRequest, fe.Field, fe.Code,
				"No podés reservar un turno en el pasado.")
		case "invalid_date":
			httperr.WriteField(c, http.StatusBadRequest, fe.Field, fe.Code,
				"Fecha inválida.")
		case "invalid_slot":
			httperr.WriteField(c, http.StatusBadRequest, fe.Field, fe.Code,
				"Horario inválido.")
		case "invalid_payment_method":
			httperr.WriteField(c, http.StatusBadRequest, fe.Field, fe.Code,
				"Medio de pago inválido.")
		case "reference_required":
			httperr.WriteField(c, http.StatusBadRequest, fe.Field, fe.Code,
				"Ingresá la referencia del pago de la seña.")
		default:
			httperr.WriteField(c, http.StatusBadRequest, fe.Field, fe.Code, "Datos inválidos.")
		}
		return
	}

	switch {
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Servicio no encontrado.")
	case httperr.IsBusiness(err, "slot_taken"):
		// the advisory check caught it before the insert
		httperr.Conflict(c, "slot_taken",
			"Ese horario ya fue reservado. Elegí otro horario disponible.")
	case httperr.IsBusiness(err, "slot_conflict"):
		// lost the race at the unique index, deliberately a distinct message
		httperr.Conflict(c, "slot_conflict",
			"Otro turno se confirmó en ese horario. Elegí una nueva opción disponible.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Error al reservar el turno.")
	}
}
