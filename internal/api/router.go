// Package api wires the HTTP routes and middleware.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leasescore/internal/api/handlers"
	"leasescore/internal/api/middleware"
	"leasescore/internal/api/models"
	"leasescore/internal/observability"
	"leasescore/internal/store"
)

// Options configures NewRouter.
type Options struct {
	Store          store.Store
	StoreBackend   string
	Metrics        *observability.Metrics
	Logger         *slog.Logger
	AllowedOrigins []string
	// RateLimiter may be nil to disable rate limiting.
	RateLimiter *middleware.RateLimiter
	// Now stamps stored results and reports. Nil means time.Now.
	Now func() time.Time
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = observability.NewMetrics()
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(metrics))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{Status: "ok", Store: opts.StoreBackend})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	deals := handlers.NewDealHandler(opts.Store, metrics, logger, opts.Now)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(opts.RateLimiter, metrics))
	{
		v1.POST("/evaluate", deals.Evaluate)
		v1.GET("/results/:id", deals.GetResult)
		v1.DELETE("/results/:id", deals.DeleteResult)
		v1.GET("/results/:id/report", deals.ResultReport)
		v1.POST("/report", deals.Report)

		v1.POST("/hints", handlers.Hints)
		v1.GET("/convert", handlers.Convert)
		v1.GET("/benchmarks", handlers.Benchmarks)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeNotFound,
				Message: "Not found",
			},
		})
	})

	return router
}
