package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/dashboard"
)

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	dashboard *dashboard.Dashboard
	list      *booking.ListBookings
	walkIn    *booking.CreateWalkIn
	lifecycle *booking.Lifecycle
	log       *zap.Logger
}

func NewAdminBookingHandler(
	d *dashboard.Dashboard,
	list *booking.ListBookings,
	walkIn *booking.CreateWalkIn,
	lifecycle *booking.Lifecycle,
	log *zap.Logger,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		dashboard: d,
		list:      list,
		walkIn:    walkIn,
		lifecycle: lifecycle,
		log:       log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateWalkInRequest struct {
	ServiceID string `json:"service_id"`
	StaffID   string `json:"staff_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`

	Name  string `json:"customer_name"`
	Email string `json:"customer_email"`
	Phone string `json:"customer_phone"`
	Notes string `json:"notes"`
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminBookingHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.dashboard.Admin(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	history, err := h.dashboard.AdminHistory(ctx, c.Query("status"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"stats":   stats,
		"history": history,
	})
}

// Stream sends a "stats" server-sent event after every booking change.
func (h *AdminBookingHandler) Stream(c *gin.Context) {
	updates, err := h.dashboard.Stream(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Stream(func(w io.Writer) bool {
		stats, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent("stats", stats)
		return true
	})
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit < 0 || limit > 500 {
		limit = 0
	}

	list, err := h.list.Execute(c.Request.Context(), booking.ListFilter{
		Status:  c.Query("status"),
		Date:    c.Query("date"),
		StaffID: c.Query("staff_id"),
		Email:   c.Query("email"),
		Limit:   limit,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AdminBookingHandler) Create(c *gin.Context) {
	var req CreateWalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.walkIn.Execute(c.Request.Context(), middleware.Session(c), booking.CreateWalkInInput{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Date:      req.Date,
		Time:      req.Time,
		Details: domain.Details{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
			Notes: req.Notes,
		},
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, b)
}

func (h *AdminBookingHandler) Complete(c *gin.Context) {
	b, err := h.lifecycle.Complete(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *AdminBookingHandler) Cancel(c *gin.Context) {
	b, err := h.lifecycle.Cancel(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, b)
}
