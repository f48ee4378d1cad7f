package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/db"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/gallery"
	"github.com/BruksfildServices01/salon-booking/internal/handlers"
	"github.com/BruksfildServices01/salon-booking/internal/infra/kv"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/payment"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/contact"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/dashboard"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/settings"
)

// Deps are the long-lived pieces built by main.
type Deps struct {
	Config      *config.Config
	Log         *zap.Logger
	Redis       *redis.Client
	Collections *db.Collections
	Auth        auth.Backend
	Sessions    *session.Registry
	Audit       *audit.Dispatcher
	Settings    *settings.Service
	Gateway     payment.Gateway
	Objects     gallery.ObjectStore
	Metrics     *metrics.Metrics
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	coll := d.Collections

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(d.Metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// USE CASES
	// ======================================================
	availability := ucBooking.NewGetAvailability(coll.Bookings, d.Settings, cfg.SlotMinutes)

	workflow := ucBooking.NewWorkflow(
		kv.NewCache[*domain.Draft](d.Redis, "draft", cfg.DraftTTL),
		coll.Services,
		coll.Staff,
		coll.Bookings,
		availability,
		d.Gateway,
		d.Audit,
		d.Metrics,
		cfg.PlatformFeePercent,
		d.Log,
	)

	walkIn := ucBooking.NewCreateWalkIn(
		coll.Services,
		coll.Staff,
		coll.Bookings,
		availability,
		d.Audit,
		d.Metrics,
		cfg.PlatformFeePercent,
	)

	lifecycle := ucBooking.NewLifecycle(coll.Bookings, d.Audit)
	listBookings := ucBooking.NewListBookings(coll.Bookings)
	dash := dashboard.New(coll.Bookings, d.Log)

	services := catalog.NewServices(coll.Services, d.Audit)
	staff := catalog.NewStaff(coll.Staff, d.Audit)

	contactSvc := contact.NewService(coll.Messages, coll.Subscribers, d.Log)
	gallerySvc := gallery.NewService(coll.Gallery, d.Objects, d.Audit, d.Log)
	accounts := account.NewService(d.Auth, coll.Profiles, d.Sessions, cfg.VerifyEmailDomain, d.Log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accounts, d.Log)
	publicHandler := handlers.NewPublicHandler(services, staff, gallerySvc, availability, d.Settings, contactSvc, d.Log)
	bookingHandler := handlers.NewBookingHandler(workflow, d.Log)
	customerHandler := handlers.NewCustomerHandler(dash, lifecycle, d.Log)
	adminBookingHandler := handlers.NewAdminBookingHandler(dash, listBookings, walkIn, lifecycle, d.Log)
	catalogHandler := handlers.NewCatalogHandler(services, staff, d.Log)
	settingsHandler := handlers.NewSettingsHandler(d.Settings, d.Log)
	inboxHandler := handlers.NewInboxHandler(contactSvc, d.Log)
	galleryHandler := handlers.NewGalleryHandler(gallerySvc, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(coll.AuditLogs), d.Log)

	requireAuth := middleware.AuthMiddleware(d.Auth, d.Sessions)
	optionalAuth := middleware.OptionalAuth(d.Auth, d.Sessions)

	api := r.Group("/api")

	// ======================================================
	// AUTH
	// ======================================================
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", requireAuth, authHandler.Logout)
	api.GET("/me", requireAuth, authHandler.Me)

	// ======================================================
	// PUBLIC
	// ======================================================
	public := api.Group("/public")
	{
		public.GET("/services", publicHandler.Services)
		public.GET("/staff", publicHandler.Staff)
		public.GET("/gallery", publicHandler.Gallery)
		public.GET("/availability", publicHandler.Availability)
		public.GET("/geography", publicHandler.Geography)
		public.GET("/status", publicHandler.Status)
		public.POST("/contact", publicHandler.Contact)
		public.POST("/newsletter", publicHandler.Newsletter)
	}

	// ======================================================
	// BOOKING DRAFTS
	// ======================================================
	drafts := api.Group("/booking/drafts", optionalAuth)
	{
		drafts.POST("", bookingHandler.Start)
		drafts.GET("/:id", bookingHandler.Get)
		drafts.PUT("/:id/service", bookingHandler.ChooseService)
		drafts.PUT("/:id/staff", bookingHandler.ChooseStaff)
		drafts.PUT("/:id/date", bookingHandler.ChooseDate)
		drafts.PUT("/:id/time", bookingHandler.ChooseTime)
		drafts.PUT("/:id/details", bookingHandler.EnterDetails)
		drafts.POST("/:id/back", bookingHandler.Back)
		drafts.POST("/:id/pay", bookingHandler.Pay)
	}

	// ======================================================
	// CUSTOMER
	// ======================================================
	customer := api.Group("/customer", requireAuth, middleware.RequireRole(models.RoleCustomer))
	{
		customer.GET("/dashboard", customerHandler.Dashboard)
		customer.GET("/bookings", customerHandler.Bookings)
		customer.PATCH("/bookings/:id/cancel", customerHandler.Cancel)
	}

	// ======================================================
	// ADMIN (owner)
	// ======================================================
	admin := api.Group("/admin", requireAuth, middleware.RequireRole(models.RoleOwner))
	{
		admin.GET("/dashboard", adminBookingHandler.Dashboard)
		admin.GET("/dashboard/stream", adminBookingHandler.Stream)

		admin.GET("/bookings", adminBookingHandler.List)
		admin.POST("/bookings", adminBookingHandler.Create)
		admin.PATCH("/bookings/:id/complete", adminBookingHandler.Complete)
		admin.PATCH("/bookings/:id/cancel", adminBookingHandler.Cancel)

		admin.GET("/services", catalogHandler.ListServices)
		admin.POST("/services", catalogHandler.CreateService)
		admin.GET("/services/:id", catalogHandler.GetService)
		admin.PATCH("/services/:id", catalogHandler.UpdateService)
		admin.DELETE("/services/:id", catalogHandler.DeleteService)

		admin.GET("/staff", catalogHandler.ListStaff)
		admin.POST("/staff", catalogHandler.CreateStaff)
		admin.GET("/staff/:id", catalogHandler.GetStaff)
		admin.PATCH("/staff/:id", catalogHandler.UpdateStaff)
		admin.DELETE("/staff/:id", catalogHandler.DeleteStaff)

		admin.GET("/settings", settingsHandler.Get)
		admin.PUT("/settings", settingsHandler.Update)

		admin.GET("/messages", inboxHandler.Messages)
		admin.PATCH("/messages/:id/read", inboxHandler.MarkRead)
		admin.DELETE("/messages/:id", inboxHandler.DeleteMessage)
		admin.GET("/subscribers", inboxHandler.Subscribers)

		admin.POST("/gallery", galleryHandler.Upload)
		admin.DELETE("/gallery/:id", galleryHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
