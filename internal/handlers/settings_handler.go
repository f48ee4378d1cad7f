package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/settings"
)

type SettingsHandler struct {
	settings *settings.Service
	log      *zap.Logger
}

func NewSettingsHandler(s *settings.Service, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{settings: s, log: log}
}

type SettingsUpdateRequest struct {
	BusinessName string            `json:"business_name"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	Hours        []models.DayHours `json:"hours" binding:"required"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	cur, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{
		"settings": cur,
		"status":   h.settings.Status(),
	})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	next, err := h.settings.Update(c.Request.Context(), middleware.Session(c), settings.UpdateInput{
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Address:      req.Address,
		Hours:        req.Hours,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{
		"settings": next,
		"status":   h.settings.Status(),
	})
}
