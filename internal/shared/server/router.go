package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"studybot-backend/internal/export"
	"studybot-backend/internal/generate"
	"studybot-backend/internal/services/health"
	"studybot-backend/internal/shared/config"
	"studybot-backend/internal/shared/metrics"
	"studybot-backend/internal/shared/server/middleware"
	"studybot-backend/internal/shared/server/respond"
)

// Handlers bundles the feature handlers mounted on the router.
type Handlers struct {
	Health   *health.Service
	Generate *generate.Handler
	Export   *export.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, h.Health.Status())
	})
	r.GET("/metrics", metrics.Handler())

	// One remote model call per generate request; keep a lid on it.
	limiter := middleware.NewRateLimiter(nil)
	generateGroup := api.Group("")
	generateGroup.Use(middleware.RateLimit(limiter, middleware.RateLimitRule{Rate: 0.5, Burst: 5}))
	h.Generate.RegisterRoutes(generateGroup)

	h.Export.RegisterRoutes(api)

	return r
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
