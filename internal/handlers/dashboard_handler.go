package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mariananails/salon-booking/internal/httperr"
	"github.com/mariananails/salon-booking/internal/httpresp"
	"github.com/mariananails/salon-booking/internal/infra/cache"
	"github.com/mariananails/salon-booking/internal/middleware"
	"github.com/mariananails/salon-booking/internal/models"
	ucAppointment "github.com/mariananails/salon-booking/internal/usecase/appointment"
	ucDashboard "github.com/mariananails/salon-booking/internal/usecase/dashboard"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	db        *gorm.DB
	overview  *ucDashboard.GetOverview
	verifyUC  *ucAppointment.VerifyDeposit
	updateUC  *ucAppointment.UpdateAppointment
	dashCache *cache.DashboardCache
}

func NewDashboardHandler(
	db *gorm.DB,
	overview *ucDashboard.GetOverview,
	verifyUC *ucAppointment.VerifyDeposit,
	updateUC *ucAppointment.UpdateAppointment,
	dashCache *cache.DashboardCache,
) *DashboardHandler {
	return &DashboardHandler{
		db:        db,
		overview:  overview,
		verifyUC:  verifyUC,
		updateUC:  updateUC,
		dashCache: dashCache,
	}
}

// ======================================================
// GET /gestion
// ======================================================

func (h *DashboardHandler) Show(c *gin.Context) {
	overview, err := h.overview.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "dashboard_failed", "Error al armar el panel de gestión.")
		return
	}

	httpresp.OK(c, overview)
}

// ======================================================
// POST /turnos/:id/verificar-senia
// ======================================================

func (h *DashboardHandler) VerifyDeposit(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Turno inválido.")
		return
	}

	ap, err := h.verifyUC.Execute(c.Request.Context(), uint(id), staffID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Turno no encontrado.")
		case httperr.IsBusiness(err, "forbidden"):
			httperr.Forbidden(c, "staff_only", "Acción reservada al personal del salón.")
		default:
			httperr.Internal(c, "failed_to_verify_deposit", "Error al verificar la seña.")
		}
		return
	}

	h.dashCache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"appointment": ap,
		"message":     fmt.Sprintf("Se verificó la seña del turno de %s.", ap.User.DisplayName()),
	})
}

// ======================================================
// PATCH /turnos/:id
// ======================================================

type UpdateAppointmentRequest struct {
	ServiceID *uint   `json:"service_id,omitempty"`
	Date      *string `json:"appointment_date,omitempty"`
	Time      *string `json:"appointment_time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (h *DashboardHandler) UpdateAppointment(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Turno inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: uint(id),
		StaffID:       staffID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Turno no encontrado.")
			return
		}
		mapBookingErrors(c, err)
		return
	}

	h.dashCache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// PATCH /mensajes/:id/resolver
// ======================================================

func (h *DashboardHandler) ResolveMessage(c *gin.Context) {
	id := c.Param("id")

	var msg models.ContactMessage
	if err := h.db.First(&msg, id).Error; err != nil {
		httperr.NotFound(c, "message_not_found", "Mensaje no encontrado.")
		return
	}

	msg.Resolved = true
	if err := h.db.Save(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_update_message", "Error al actualizar el mensaje.")
		return
	}

	h.dashCache.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, msg)
}
