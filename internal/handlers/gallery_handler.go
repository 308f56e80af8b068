package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mariananails/salon-booking/internal/httperr"
	"github.com/mariananails/salon-booking/internal/infra/storage"
	"github.com/mariananails/salon-booking/internal/models"
)

type GalleryHandler struct {
	db      *gorm.DB
	storage *storage.GalleryStorage
}

func NewGalleryHandler(db *gorm.DB, st *storage.GalleryStorage) *GalleryHandler {
	return &GalleryHandler{db: db, storage: st}
}

// Upload takes a multipart form (image + title + optional description) and
// publishes the webp-converted image.
func (h *GalleryHandler) Upload(c *gin.Context) {
	if !h.storage.Enabled() {
		httperr.Internal(c, "gallery_storage_disabled", "La galería no está configurada.")
		return
	}

	title := c.PostForm("title")
	if title == "" {
		httperr.BadRequest(c, "missing_title", "El título es obligatorio.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "La imagen es obligatoria.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Error al leer la imagen.")
		return
	}
	defer file.Close()

	key, url, err := h.storage.Upload(c.Request.Context(), file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "No pudimos procesar la imagen (se acepta JPG o PNG).")
		return
	}

	img := models.GalleryImage{
		Title:       title,
		ObjectKey:   key,
		URL:         url,
		Description: c.PostForm("description"),
		Featured:    c.PostForm("featured") == "true",
	}

	if err := h.db.Create(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_save_image", "Error al guardar la imagen.")
		return
	}

	c.JSON(http.StatusCreated, img)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var img models.GalleryImage
	if err := h.db.First(&img, id).Error; err != nil {
		httperr.NotFound(c, "image_not_found", "Imagen no encontrada.")
		return
	}

	if h.storage.Enabled() {
		if err := h.storage.Delete(c.Request.Context(), img.ObjectKey); err != nil {
			httperr.Internal(c, "failed_to_delete_object", "Error al borrar la imagen del almacenamiento.")
			return
		}
	}

	if err := h.db.Delete(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Error al borrar la imagen.")
		return
	}

	c.Status(http.StatusNoContent)
}
