package server

import (
	"io"

	"github.com/divgaze/api/internal/api/handlers"
	"github.com/divgaze/api/internal/api/middleware"
	"github.com/divgaze/api/internal/config"
	"github.com/divgaze/api/internal/mail"
	"github.com/divgaze/api/internal/server/routes"
	"github.com/divgaze/api/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()
	router.Use(gin.Recovery())

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Init wires middleware, services, handlers and routes
func (s *Server) Init() {
	mailer := mail.NewResendService(s.cfg.ResendAPIKey)
	s.InitWithMailer(mailer)
}

// InitWithMailer is Init with an explicit email sender (used by tests)
func (s *Server) InitWithMailer(mailer mail.Sender) {
	contactService := service.NewContactService(mailer, s.cfg)

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(contactService),
		Health:  handlers.NewHealthHandler(),
	}

	m := &routes.Middleware{
		Validation:     middleware.NewValidationMiddleware(),
		ContactLimiter: middleware.NewClientLimiter(s.cfg.ContactRateLimit, s.cfg.ContactRateWindow),
	}

	routes.SetupGlobalMiddleware(s.router, s.cfg)
	routes.Setup(s.router, h, m)
}

// Router exposes the underlying engine (used by tests)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
