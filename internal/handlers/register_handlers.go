package handlers

import (
	"github.com/kyigit/hotel_folio_app/cmd/docs"
	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	portssvc "github.com/kyigit/hotel_folio_app/internal/core/ports/services"
	"github.com/kyigit/hotel_folio_app/internal/middleware"
	"github.com/kyigit/hotel_folio_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (not exposed in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations.
// Reception staff work the front desk (stays, ledger, reports); service staff run the POS
// (orders, catalog reads, reports); admins pass every gate.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	reception := v1.Group("", middleware.RequireRoles(domain.RoleReception))
	registerStayRoutes(reception, services.Stay)
	registerPaymentRoutes(reception, services.Payment)

	service := v1.Group("", middleware.RequireRoles(domain.RoleService))
	registerOrderRoutes(service, services.Order)

	admin := v1.Group("", middleware.RequireRoles())
	registerMenuRoutes(service, admin, services.Menu)

	reports := v1.Group("", middleware.RequireRoles(domain.RoleReception, domain.RoleService))
	registerReportingRoutes(reports, services.Reporting)
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
