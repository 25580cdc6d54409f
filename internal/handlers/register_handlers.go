package handlers

import (
	"github.com/SscSPs/atm_backend/cmd/docs"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	portssvc "github.com/SscSPs/atm_backend/internal/core/ports/services"
	"github.com/SscSPs/atm_backend/internal/middleware"
	"github.com/SscSPs/atm_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	catalog *domain.Catalog,
) error {
	if err := RegisterValidators(catalog); err != nil {
		return err
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

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	v1 := r.Group("/api/v1")

	// Shared by login and card header authentication, so PIN guesses spend one budget per IP
	ipLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return err
	}

	registerAuthRoutes(v1, services.Auth, ipLimiter)

	// Terminals send card credentials on every request, other clients a session token
	cardHolder := v1.Group("",
		middleware.CardAuth(services.Auth, ipLimiter),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	RegisterAccountRoutes(cardHolder, services.Atm)

	admin := v1.Group("/admin", middleware.AdminKeyAuth(cfg.AdminAPIKey))
	RegisterCashRoutes(admin, services.Cash)
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
