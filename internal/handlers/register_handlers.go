package handlers

import (
	"net/http"

	"github.com/SscSPs/pos_monedas/cmd/docs"
	portssvc "github.com/SscSPs/pos_monedas/internal/core/ports/services"
	"github.com/SscSPs/pos_monedas/internal/middleware"
	"github.com/SscSPs/pos_monedas/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterDeps carries the optional pieces of the HTTP stack built in main.
type RouterDeps struct {
	Metrics *middleware.Metrics
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	// /v1/pos/monedas/ must not redirect to the collection route.
	r.RedirectTrailingSlash = false

	// Add health check route; JSON like every other response.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	// Unknown routes still require the correlation headers before reporting 404.
	r.NoRoute(middleware.RequireCorrelationHeaders(), routeNotFound)
}

// setupAPIV1Routes configures the /v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/v1", middleware.RequireCorrelationHeaders())

	registerCurrencyRoutes(v1, services.Currency)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// NewRouter builds the engine with the global middleware chain and every route.
// OPTIONS requests are answered by the CORS middleware before routing.
func NewRouter(cfg *config.Config, services *portssvc.ServiceContainer, deps RouterDeps, global ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(global...)
	RegisterRoutes(r, cfg, services, deps)
	return r
}
