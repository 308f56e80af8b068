package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/mariananails/salon-booking/internal/domain/appointment"
	"github.com/mariananails/salon-booking/internal/httperr"
	"github.com/mariananails/salon-booking/internal/middleware"
	"github.com/mariananails/salon-booking/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type HomeHandler struct {
	db *gorm.DB
}

func NewHomeHandler(db *gorm.DB) *HomeHandler {
	return &HomeHandler{db: db}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// HomeFormRequest carries both embedded landing-page forms; form_type picks
// which fields matter, so per-form validation happens in the branch.
type HomeFormRequest struct {
	FormType string `json:"form_type" binding:"required"`

	// contact
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`

	// review
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type servicePreview struct {
	models.Service
	Deposit string `json:"deposit"`
}

////////////////////////////////////////////////////////
// HOME (landing payload)
////////////////////////////////////////////////////////

func (h *HomeHandler) Show(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar los servicios.")
		return
	}

	previews := make([]servicePreview, 0, len(services))
	for _, svc := range services {
		previews = append(previews, servicePreview{
			Service: svc,
			Deposit: domain.Deposit(svc.Price).StringFixed(2),
		})
	}

	var gallery []models.GalleryImage
	h.db.Order("featured DESC, created_at DESC").Limit(8).Find(&gallery)

	var reviews []models.Review
	h.db.Preload("User").
		Where("visible = ?", true).
		Order("created_at DESC").
		Limit(10).
		Find(&reviews)

	var avgRating *float64
	h.db.Model(&models.Review{}).
		Where("visible = ?", true).
		Select("AVG(rating)").
		Scan(&avgRating)

	c.JSON(http.StatusOK, gin.H{
		"services":           previews,
		"deposit_percentage": 50,
		"gallery":            gallery,
		"reviews":            reviews,
		"avg_rating":         avgRating,
	})
}

////////////////////////////////////////////////////////
// HOME FORMS (contact | review)
////////////////////////////////////////////////////////

func (h *HomeHandler) SubmitForm(c *gin.Context) {
	var req HomeFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Por favor revisá los datos del formulario.")
		return
	}

	switch req.FormType {
	case "contact":
		h.submitContact(c, req)
	case "review":
		h.submitReview(c, req)
	default:
		httperr.BadRequest(c, "unknown_form_type", "Formulario desconocido.")
	}
}

func (h *HomeHandler) submitContact(c *gin.Context, req HomeFormRequest) {
	if req.Name == "" || req.Email == "" || req.Message == "" || len(req.Message) > 1000 {
		httperr.BadRequest(c, "invalid_request", "Por favor revisá los datos del formulario de contacto.")
		return
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.db.Create(&msg).Error; err != nil {
		httperr.Internal(c, "failed_to_save_message", "No pudimos guardar tu mensaje.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Gracias por tu mensaje. Te responderemos a la brevedad.",
	})
}

func (h *HomeHandler) submitReview(c *gin.Context, req HomeFormRequest) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "login_required", "Necesitás iniciar sesión para dejar una valoración.")
		return
	}

	if req.Rating < 1 || req.Rating > 5 || req.Comment == "" || len(req.Comment) > 800 {
		httperr.BadRequest(c, "invalid_review", "No pudimos registrar tu valoración. Revisá los datos ingresados.")
		return
	}

	review := models.Review{
		UserID:  userIDVal.(uint),
		Rating:  req.Rating,
		Comment: req.Comment,
		Visible: true,
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_save_review", "No pudimos registrar tu valoración.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Gracias por compartir tu experiencia.",
	})
}
