package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/gallery"
	"github.com/BruksfildServices01/salon-booking/internal/geo"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/contact"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/settings"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated salon pages.
type PublicHandler struct {
	services     *catalog.Services
	staff        *catalog.Staff
	gallery      *gallery.Service
	availability *booking.GetAvailability
	settings     *settings.Service
	contact      *contact.Service
	log          *zap.Logger
}

func NewPublicHandler(
	services *catalog.Services,
	staff *catalog.Staff,
	gallery *gallery.Service,
	availability *booking.GetAvailability,
	settings *settings.Service,
	contact *contact.Service,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		services:     services,
		staff:        staff,
		gallery:      gallery,
		availability: availability,
		settings:     settings,
		contact:      contact,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required"`
}

// ======================================================
// CATALOG
// ======================================================

// Services lists active services only; inactive ones never reach the public.
func (h *PublicHandler) Services(c *gin.Context) {
	active := true
	list, err := h.services.List(c.Request.Context(), catalog.ServiceFilter{
		Category: c.Query("category"),
		Active:   &active,
		Search:   c.Query("query"),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *PublicHandler) Staff(c *gin.Context) {
	active := true
	list, err := h.staff.List(c.Request.Context(), &active)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *PublicHandler) Gallery(c *gin.Context) {
	list, err := h.gallery.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, "missing_date", "date is required (YYYY-MM-DD).")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), date, c.Query("staff_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// MISC
// ======================================================

func (h *PublicHandler) Geography(c *gin.Context) {
	httpresp.List(c, geo.Districts())
}

func (h *PublicHandler) Status(c *gin.Context) {
	httpresp.OK(c, h.settings.Status())
}

func (h *PublicHandler) Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.contact.Send(c.Request.Context(), contact.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, msg)
}

func (h *PublicHandler) Newsletter(c *gin.Context) {
	var req NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sub, created, err := h.contact.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if !created {
		httpresp.OK(c, sub)
		return
	}
	httpresp.Created(c, sub)
}
