package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/catalog"
)

type CatalogHandler struct {
	services *catalog.Services
	staff    *catalog.Staff
	log      *zap.Logger
}

func NewCatalogHandler(services *catalog.Services, staff *catalog.Staff, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{services: services, staff: staff, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Description string  `json:"description"`
	Active      *bool   `json:"active"`
}

type CreateStaffRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Active    *bool  `json:"active"`
}

// --------- Services ---------

func (h *CatalogHandler) ListServices(c *gin.Context) {
	list, err := h.services.List(c.Request.Context(), catalog.ServiceFilter{
		Category: c.Query("category"),
		Active:   boolQuery(c, "active"),
		Search:   c.Query("query"),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	svc, err := h.services.Create(c.Request.Context(), middleware.Session(c), &models.Service{
		Name:        strings.TrimSpace(req.Name),
		Category:    models.Category(strings.ToLower(strings.TrimSpace(req.Category))),
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Description: req.Description,
		Active:      req.Active == nil || *req.Active,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.services.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req catalog.ServicePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	svc, err := h.services.Update(c.Request.Context(), middleware.Session(c), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --------- Staff ---------

func (h *CatalogHandler) ListStaff(c *gin.Context) {
	list, err := h.staff.List(c.Request.Context(), boolQuery(c, "active"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	st, err := h.staff.Create(c.Request.Context(), middleware.Session(c), &models.Staff{
		Name:      strings.TrimSpace(req.Name),
		Specialty: strings.TrimSpace(req.Specialty),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Active:    req.Active == nil || *req.Active,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.Created(c, st)
}

func (h *CatalogHandler) GetStaff(c *gin.Context) {
	st, err := h.staff.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, st)
}

func (h *CatalogHandler) UpdateStaff(c *gin.Context) {
	var req catalog.StaffPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	st, err := h.staff.Update(c.Request.Context(), middleware.Session(c), c.Param("id"), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, st)
}

func (h *CatalogHandler) DeleteStaff(c *gin.Context) {
	if err := h.staff.Delete(c.Request.Context(), middleware.Session(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
