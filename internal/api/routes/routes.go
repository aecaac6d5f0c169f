package routes

import (
	"context"
	"fmt"

	"valuation-backend/internal/api/handlers"
	"valuation-backend/internal/api/middleware"
	"valuation-backend/internal/auth"
	"valuation-backend/internal/config"
	"valuation-backend/internal/database/models"
	"valuation-backend/internal/lock"
	"valuation-backend/internal/repository"
	"valuation-backend/internal/service"
	"valuation-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Infrastructure is what main owns and closes: connections, the tenant directory
// and the background activity writer.
type Infrastructure struct {
	AdminDB       *gorm.DB
	Organizations repository.OrganizationRepositoryInterface
	Directory     *tenant.Directory
	Provisioner   service.TenantProvisioner
	Stores        repository.TenantStoreFactory
	Activity      *service.ActivityLogger
	Locker        lock.Locker
	Redis         redis.UniversalClient
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(infra *Infrastructure, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Catalog repositories (admin database)
	bankRepo := repository.NewBankRepository(infra.AdminDB)
	structureRepo := repository.NewTemplateStructureRepository(infra.AdminDB)
	commonFieldRepo := repository.NewCommonFieldRepository(infra.AdminDB)
	docTypeRepo := repository.NewDocumentTypeRepository(infra.AdminDB)
	permissionTemplateRepo := repository.NewPermissionTemplateRepository(infra.AdminDB)

	// Services
	templateService := service.NewTemplateService(bankRepo, structureRepo, commonFieldRepo, docTypeRepo)
	permissionService := service.NewPermissionService(permissionTemplateRepo, infra.Stores)
	organizationService := service.NewOrganizationService(infra.Organizations, infra.Directory, infra.Provisioner, validator)
	customTemplateService := service.NewCustomTemplateService(infra.Stores, bankRepo, commonFieldRepo, permissionService, infra.Activity, infra.Locker, validator)
	reportService := service.NewReportService(infra.Stores, bankRepo, organizationService, permissionService, infra.Activity, validator)

	authService, err := auth.NewAuthService(cfg.JWTSecret, 0)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService, infra.Directory)

	// Handlers
	pingers := map[string]handlers.Pinger{}
	if infra.Redis != nil {
		rdb := infra.Redis
		pingers["redis"] = handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	healthHandler := handlers.NewHealthHandler(infra.AdminDB, pingers)
	templateHandler := handlers.NewTemplateHandler(templateService)
	permissionHandler := handlers.NewPermissionHandler(permissionService)
	customTemplateHandler := handlers.NewCustomTemplateHandler(customTemplateService)
	reportHandler := handlers.NewReportHandler(reportService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.POST("/auth/validate", authHandler.ValidateToken)
	v1.Use(authMiddleware.RequireAuth())
	{
		// Shared catalog
		v1.GET("/banks", templateHandler.ListBanks)
		v1.GET("/document-types", templateHandler.ListDocumentTypes)
		templates := v1.Group("/templates/:bankCode/:propertyType")
		{
			templates.GET("", templateHandler.GetAggregatedTemplate)
			templates.GET("/custom-fields", templateHandler.GetCustomTemplateFields)
		}

		// Caller's own organization, taken from the token
		me := v1.Group("/me", authMiddleware.RequireOrganization())
		{
			me.GET("/permissions", permissionHandler.GetMyPermissions)
		}

		// Organization scoped routes, bound to the organization's own database
		org := v1.Group("/orgs/:org", authMiddleware.RequireOrganization())
		{
			customTemplates := org.Group("/custom-templates")
			{
				customTemplates.GET("", customTemplateHandler.List)
				customTemplates.POST("", customTemplateHandler.Create)
				customTemplates.GET("/:id", customTemplateHandler.Get)
				customTemplates.PUT("/:id", customTemplateHandler.Update)
				customTemplates.DELETE("/:id", customTemplateHandler.Delete)
				customTemplates.POST("/:id/duplicate", customTemplateHandler.Duplicate)
			}

			reports := org.Group("/reports")
			{
				reports.GET("", reportHandler.List)
				reports.POST("", reportHandler.Create)
				reports.GET("/:id", reportHandler.Get)
			}
		}

		// Organization lifecycle, gated by the caller's organizations capabilities
		admin := v1.Group("/admin", authMiddleware.RequireOrganization())
		{
			can := func(action string) gin.HandlerFunc {
				return permissionHandler.Require(models.ResourceOrganizations, action)
			}
			organizations := admin.Group("/organizations")
			{
				organizations.GET("", can(models.ActionView), organizationHandler.ListOrganizations)
				organizations.POST("", can(models.ActionCreate), organizationHandler.CreateOrganization)
				organizations.GET("/:id", can(models.ActionView), organizationHandler.GetOrganization)
				organizations.PUT("/:id", can(models.ActionEdit), organizationHandler.UpdateOrganization)
				organizations.DELETE("/:id", can(models.ActionDelete), organizationHandler.DeleteOrganization)
				organizations.POST("/:id/reactivate", can(models.ActionEdit), organizationHandler.ReactivateOrganization)
			}
		}
	}

	return router, nil
}
