package routes

import (
	"github.com/divgaze/api/internal/api/handlers"
	"github.com/divgaze/api/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation     *middleware.ValidationMiddleware
	ContactLimiter *middleware.ClientLimiter
}
