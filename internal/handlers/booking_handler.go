package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

// BookingHandler drives the step-by-step booking draft.
type BookingHandler struct {
	workflow *booking.Workflow
	log      *zap.Logger
}

func NewBookingHandler(workflow *booking.Workflow, log *zap.Logger) *BookingHandler {
	return &BookingHandler{workflow: workflow, log: log}
}

// --------- Requests ---------

type ChooseServiceRequest struct {
	ServiceID string `json:"service_id"`
}

type ChooseStaffRequest struct {
	StaffID string `json:"staff_id"`
}

type ChooseDateRequest struct {
	Date string `json:"date"`
}

type ChooseTimeRequest struct {
	Time string `json:"time"`
}

type DetailsRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type PayRequest struct {
	CardToken string `json:"card_token"`
	Method    string `json:"payment_method"`
}

// --------- Handlers ---------

func (h *BookingHandler) Start(c *gin.Context) {
	d, err := h.workflow.Start(c.Request.Context(), middleware.Session(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, d)
}

func (h *BookingHandler) Get(c *gin.Context) {
	d, err := h.workflow.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *BookingHandler) ChooseService(c *gin.Context) {
	var req ChooseServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.reply(c)(h.workflow.ChooseService(c.Request.Context(), c.Param("id"), req.ServiceID))
}

func (h *BookingHandler) ChooseStaff(c *gin.Context) {
	var req ChooseStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.reply(c)(h.workflow.ChooseStaff(c.Request.Context(), c.Param("id"), req.StaffID))
}

func (h *BookingHandler) ChooseDate(c *gin.Context) {
	var req ChooseDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.reply(c)(h.workflow.ChooseDate(c.Request.Context(), c.Param("id"), req.Date))
}

func (h *BookingHandler) ChooseTime(c *gin.Context) {
	var req ChooseTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.reply(c)(h.workflow.ChooseTime(c.Request.Context(), c.Param("id"), req.Time))
}

func (h *BookingHandler) EnterDetails(c *gin.Context) {
	var req DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	h.reply(c)(h.workflow.EnterDetails(c.Request.Context(), c.Param("id"), domain.Details{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	}))
}

func (h *BookingHandler) Back(c *gin.Context) {
	h.reply(c)(h.workflow.Back(c.Request.Context(), c.Param("id")))
}

func (h *BookingHandler) Pay(c *gin.Context) {
	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	d, b, err := h.workflow.Pay(c.Request.Context(), c.Param("id"), booking.PayInput{
		CardToken: req.CardToken,
		Method:    req.Method,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"draft":   d,
		"booking": b,
	})
}

func (h *BookingHandler) reply(c *gin.Context) func(*domain.Draft, error) {
	return func(d *domain.Draft, err error) {
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		httpresp.OK(c, d)
	}
}
