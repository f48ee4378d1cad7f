package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/dashboard"
)

type CustomerHandler struct {
	dashboard *dashboard.Dashboard
	lifecycle *booking.Lifecycle
	log       *zap.Logger
}

func NewCustomerHandler(d *dashboard.Dashboard, lifecycle *booking.Lifecycle, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{dashboard: d, lifecycle: lifecycle, log: log}
}

func (h *CustomerHandler) Dashboard(c *gin.Context) {
	view, err := h.dashboard.Customer(c.Request.Context(), middleware.Session(c), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *CustomerHandler) Bookings(c *gin.Context) {
	view, err := h.dashboard.Customer(c.Request.Context(), middleware.Session(c), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, view.History)
}

func (h *CustomerHandler) Cancel(c *gin.Context) {
	b, err := h.lifecycle.Cancel(c.Request.Context(), middleware.Session(c), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, b)
}
