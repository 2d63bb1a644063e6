package handlers

import (
	"fmt"

	"github.com/SscSPs/finance_manager/cmd/docs"
	portssvc "github.com/SscSPs/finance_manager/internal/core/ports/services"
	"github.com/SscSPs/finance_manager/internal/middleware"
	"github.com/SscSPs/finance_manager/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) error {
	invoiceLimiter, err := middleware.NewMemoryLimiter(cfg.InvoiceRateLimit)
	if err != nil {
		return fmt.Errorf("invalid INVOICE_RATE_LIMIT %q: %w", cfg.InvoiceRateLimit, err)
	}

	v1 := r.Group("/api/v1")

	registerStockRoutes(v1, service.Stock)
	registerRecordRoutes(v1, service.Ledger)
	registerCategoryRoutes(v1, service.Category)
	registerSettingsRoutes(v1, service.Settings)
	registerInvoiceRoutes(v1, service.Invoice, cfg.CurrencyCode, middleware.RateLimit(invoiceLimiter))
	registerReportingRoutes(v1, service.Reporting, cfg.CurrencyCode)
	registerMaintenanceRoutes(v1, service.Maintenance)
	registerExportRoutes(v1, service.Export)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
