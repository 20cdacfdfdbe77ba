package routes

import (
	"github.com/divgaze/api/internal/api/handlers"
	"github.com/divgaze/api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	// Public endpoint, no auth. The per-client window runs before
	// validation so a throttled caller costs no validation or email work.
	router.POST("/contact",
		middleware.ClientRateLimit(m.ContactLimiter),
		m.Validation.ValidateContactRequest(),
		contact.Submit,
	)
}
