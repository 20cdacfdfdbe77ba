package routes

import (
	"net/http"

	"github.com/divgaze/api/internal/api/dto/v1/contact"
	"github.com/divgaze/api/internal/api/middleware"
	"github.com/divgaze/api/internal/config"
	"github.com/divgaze/api/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	// Health check endpoint - no CORS restrictions needed
	router.GET("/health", h.Health.Check)

	// Contact routes (public)
	SetupContactRoutes(router.Group("/api"), h.Contact, m)

	// Unsupported verbs on known routes get the fixed 405 body. OPTIONS
	// never reaches here; the CORS middleware answers preflights directly.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, contact.ErrorResponse{
			Error: "Method not allowed",
		})
	})

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   cfg.GlobalRPS,
		Burst: cfg.GlobalBurst,
	}))
}
