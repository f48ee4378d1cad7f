package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/account"
)

type AuthHandler struct {
	accounts *account.Service
	log      *zap.Logger
}

func NewAuthHandler(accounts *account.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Role     string `json:"role"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`

	BusinessName string `json:"business_name"`
	District     string `json:"district"`
	Area         string `json:"area"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.accounts.Register(c.Request.Context(), account.RegisterInput{
		Role:         models.Role(req.Role),
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Phone:        req.Phone,
		BusinessName: req.BusinessName,
		District:     req.District,
		Area:         req.Area,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"token":    res.Token,
		"profile":  res.Profile,
		"redirect": middleware.HomeFor(res.Profile.Role),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"token":    res.Token,
		"profile":  res.Profile,
		"redirect": middleware.HomeFor(res.Profile.Role),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if err := h.accounts.Logout(c.Request.Context(), token); err != nil {
		respondError(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{"status": "signed_out", "redirect": middleware.LoginPath})
}

func (h *AuthHandler) Me(c *gin.Context) {
	sc := middleware.Session(c)
	httpresp.OK(c, gin.H{
		"user_id": sc.UserID,
		"email":   sc.Email,
		"role":    sc.Role,
		"profile": sc.Profile,
	})
}
