package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/gallery"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
)

// MaxUploadBytes caps a single gallery upload.
const MaxUploadBytes = 10 << 20

type GalleryHandler struct {
	gallery *gallery.Service
	log     *zap.Logger
}

func NewGalleryHandler(g *gallery.Service, log *zap.Logger) *GalleryHandler {
	return &GalleryHandler{gallery: g, log: log}
}

// Upload expects multipart form fields "file", "title" and "category".
func (h *GalleryHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Attach an image in the \"file\" field.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "unreadable_file", "The uploaded file could not be read.")
		return
	}
	defer f.Close()

	img, err := h.gallery.Upload(c.Request.Context(), middleware.Session(c), gallery.UploadInput{
		Title:    c.PostForm("title"),
		Category: c.PostForm("category"),
		File:     f,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, img)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.gallery.Delete(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
