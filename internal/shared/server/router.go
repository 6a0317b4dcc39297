package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumewise-backend/internal/ai"
	googleauth "resumewise-backend/internal/auth"
	"resumewise-backend/internal/billing"
	"resumewise-backend/internal/resumes"
	"resumewise-backend/internal/shared/config"
	"resumewise-backend/internal/shared/metrics"
	"resumewise-backend/internal/shared/server/middleware"
	"resumewise-backend/internal/shared/server/respond"
	"resumewise-backend/internal/templates"
	"resumewise-backend/internal/users"
)

// RouterDeps carries the handlers wired by bootstrap.
type RouterDeps struct {
	Config          config.Config
	ResumeHandler   *resumes.Handler
	TemplateHandler *templates.Handler
	AIHandler       *ai.Handler
	BillingHandler  *billing.Handler
	UserHandler     *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.TemplateHandler != nil {
		deps.TemplateHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.AIHandler != nil {
		// LLM calls are slow and metered; keep per-user request rates sane.
		aiGroup := api.Group("")
		aiGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "AI",
			Rules: map[string]middleware.RateLimitRule{
				"AI": {Rate: 0.5, Burst: 3},
			},
		}))
		deps.AIHandler.RegisterRoutes(aiGroup)
	}
	if deps.BillingHandler != nil {
		deps.BillingHandler.RegisterRoutes(api)
		if deps.Config.Env == "dev" {
			dev := api.Group("/dev")
			deps.BillingHandler.RegisterDevRoutes(dev)
		}
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
