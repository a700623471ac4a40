package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/quotelens/internal/metrics"
	"github.com/guttosm/quotelens/internal/middleware"
)

// RouterConfig tunes the middleware stack.
type RouterConfig struct {
	RequestTimeout time.Duration // 0 disables the per-request deadline
	AllowedOrigins []string
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS).
//   - Applies cfg.RequestTimeout to every request context.
//   - Mounts Swagger docs (/swagger/*any) and Prometheus (/metrics).
//   - Configures the symbol routes under /api/v1 and the legacy /api prefix.
//   - Mounts health endpoints when health is not nil.
func NewRouter(handler *Handler, health *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(cfg.AllowedOrigins),
	)

	// ─── Timeout ──────────────────────────────────
	if cfg.RequestTimeout > 0 {
		router.Use(func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
			defer cancel()
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	// ─── Ops ──────────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	if health != nil {
		health.Register(router)
	}

	// ─── API ──────────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/symbol/:symbol", handler.GetSymbol)
	}
	legacy := router.Group("/api")
	{
		legacy.GET("/symbol/:symbol", handler.GetSymbol)
	}

	return router
}
