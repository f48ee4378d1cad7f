package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/app"
	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/gallery"
	"github.com/BruksfildServices01/salon-booking/internal/infra/document"
	"github.com/BruksfildServices01/salon-booking/internal/infra/kv"
	"github.com/BruksfildServices01/salon-booking/internal/logger"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/payment"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
	"github.com/BruksfildServices01/salon-booking/internal/session"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	"github.com/BruksfildServices01/salon-booking/internal/usecase/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zapLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zapLog.Sync()

	timezone.SetDefault(cfg.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := dbpkg.NewRedis(ctx, cfg)
	if err != nil {
		zapLog.Fatal("redis unavailable", zap.Error(err))
	}
	defer rdb.Close()

	// ======================================================
	// STORAGE BACKEND
	// ======================================================
	var collections *dbpkg.Collections
	switch cfg.StoreBackend {
	case config.BackendKV:
		collections = dbpkg.NewKVCollections(rdb, zapLog)
	case config.BackendDocument:
		gdb, err := dbpkg.NewDB(cfg)
		if err != nil {
			zapLog.Fatal("database unavailable", zap.Error(err))
		}
		hub := document.NewHub()
		go document.NewListener(cfg.DBUrl, hub, zapLog).Run(ctx)
		collections = dbpkg.NewDocumentCollections(gdb, hub, zapLog)
	}
	zapLog.Info("storage ready", zap.String("backend", cfg.StoreBackend))

	// ======================================================
	// SERVICES
	// ======================================================
	auditDispatcher := audit.NewDispatcher(audit.New(collections.AuditLogs), zapLog)
	defer auditDispatcher.Close()

	authBackend := auth.NewLocal(collections.Credentials, kv.NewRevocations(rdb), cfg.JWTSecret, cfg.JWTTTL, zapLog)
	sessions := session.NewRegistry(collections.Profiles, zapLog)
	go sessions.Run(ctx, authBackend.Subscribe(ctx))

	var gateway payment.Gateway = payment.Dev{}
	if cfg.MercadoPagoToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			zapLog.Fatal("payment gateway", zap.Error(err))
		}
		gateway = mp
	} else {
		zapLog.Warn("MERCADOPAGO_ACCESS_TOKEN not set; every payment is approved")
	}

	settingsSvc := settings.NewService(collections.Settings, auditDispatcher, zapLog)

	scheduler := app.NewScheduler(settingsSvc, cfg.StatusInterval, zapLog)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:      cfg,
		Log:         zapLog,
		Redis:       rdb,
		Collections: collections,
		Auth:        authBackend,
		Sessions:    sessions,
		Audit:       auditDispatcher,
		Settings:    settingsSvc,
		Gateway:     gateway,
		Objects:     gallery.NewS3Store(cfg),
		Metrics:     metrics.New(prometheus.DefaultRegisterer),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown", zap.Error(err))
	}
}
