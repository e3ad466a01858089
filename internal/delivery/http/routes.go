package http

import (
	"github.com/gin-gonic/gin"
	"github.com/pricelens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = int64(cfg.Upload.MaxSizeMB) << 20

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		appraisal := v1.Group("/appraisal")
		{
			// The analyze route is the only one issuing model calls, so it
			// alone sits behind the request limiter.
			appraisal.POST("/analyze", RateLimitMiddleware(cfg.RateLimit.PerMinute), handler.AnalyzeProduct)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/lookup", handler.LookupCatalog)
		}
	}

	return router
}
