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

	"valuation-backend/internal/api/routes"
	"valuation-backend/internal/config"
	"valuation-backend/internal/database"
	"valuation-backend/internal/database/models"
	"valuation-backend/internal/lock"
	"valuation-backend/internal/logger"
	"valuation-backend/internal/repository"
	"valuation-backend/internal/service"
	"valuation-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// Admin database: organizations, shared catalogs and permission templates
	adminDB, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}
	defer func() { _ = database.Close(adminDB) }()

	permissionTemplates := repository.NewPermissionTemplateRepository(adminDB)
	seeded, err := permissionTemplates.SeedDefaults(sigCtx, models.DefaultPermissionTemplates())
	if err != nil {
		logrus.Fatal("Failed to seed permission templates:", err)
	}
	if seeded > 0 {
		logrus.WithField("count", seeded).Info("Seeded default permission templates")
	}

	organizations := repository.NewOrganizationRepository(adminDB)
	provisioner := database.NewProvisioner(adminDB, cfg.TenantDatabaseURL, nil)
	directory := tenant.NewDirectory(organizations, provisioner, tenant.NewProtectedSet(cfg.ProtectedDatabaseSet()), cfg.TenantDBPrefix)
	directory.SetCloseGrace(time.Duration(cfg.TenantPoolCloseGraceSec) * time.Second)
	defer func() {
		logrus.WithField("tenants", directory.Len()).Info("Closing tenant database pools")
		directory.Close()
	}()

	stores := repository.NewTenantStores()
	activity := service.NewActivityLogger(stores)

	infra := &routes.Infrastructure{
		AdminDB:       adminDB,
		Organizations: organizations,
		Directory:     directory,
		Provisioner:   provisioner,
		Stores:        stores,
		Activity:      activity,
		Locker:        lock.NoopLocker{},
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer func() { _ = rdb.Close() }()
		infra.Redis = rdb
		infra.Locker = lock.NewRedisLocker(rdb, time.Duration(cfg.CustomTemplateLockTTLSec)*time.Second)
		logrus.WithField("addr", cfg.RedisAddr).Info("Custom template scope locking via Redis")
	} else {
		logrus.Warn("REDIS_ADDR not set; custom template limit is enforced per instance only")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(infra, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", port)
		serverErrCh <- srv.ListenAndServe()
	}()

	select {
	case <-sigCtx.Done():
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}

	// pending activity writes still need their tenant pools
	activity.Wait()
	logrus.Info("Server stopped")
}
