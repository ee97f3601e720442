package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/sangkips/promo-kiosk/internal/config"
	"github.com/sangkips/promo-kiosk/internal/presentation/http/handler"
	"github.com/sangkips/promo-kiosk/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog *handler.CatalogHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg      *config.Config
	Logger   zerolog.Logger
	Registry *prometheus.Registry
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	if deps.Registry != nil {
		router.Use(middleware.NewMetrics(deps.Registry).Middleware())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(rateLimiterConfig(&deps.Cfg.RateLimit))
		v1.Use(rateLimiter.Middleware())

		registerCatalogRoutes(v1, h)
	}

	return router
}

func registerCatalogRoutes(rg *gin.RouterGroup, h *Handlers) {
	products := rg.Group("/products")
	{
		products.GET("", h.Catalog.ListProducts)
		products.GET("/:name", h.Catalog.GetProduct)
	}

	rg.GET("/promotions", h.Catalog.ListPromotions)
}

func rateLimiterConfig(cfg *config.RateLimitConfig) middleware.RateLimiterConfig {
	rl := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		rl.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		rl.BurstSize = cfg.Requests
	}
	rl.CleanupInterval = 5 * time.Minute
	return rl
}
