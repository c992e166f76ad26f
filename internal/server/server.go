package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"brightline/internal/config"
	"brightline/internal/handler"
	"brightline/internal/mailer"
	"brightline/internal/middleware"
	"brightline/internal/ratelimit"
	"brightline/internal/repository"
	"brightline/internal/service"
	"brightline/internal/storage"
)

type Server struct {
	router         *gin.Engine
	config         *config.Config
	db             *storage.Database
	contactHandler *handler.ContactHandler
	slaHandler     *handler.SLAHandler
	logWorker      *middleware.RequestLogWorker
	httpServer     *http.Server
}

func New(cfg *config.Config, db *storage.Database, limiter ratelimit.Limiter, m *mailer.Mailer) *Server {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	slaRepo := repository.NewSLARepository(db)
	logRepo := repository.NewRequestLogRepository(db)

	contactService := service.NewContactService(limiter, m)
	slaService := service.NewSLAService(slaRepo)

	s := &Server{
		router:         router,
		config:         cfg,
		db:             db,
		contactHandler: handler.NewContactHandler(contactService),
		slaHandler:     handler.NewSLAHandler(slaService),
		logWorker:      middleware.NewRequestLogWorker(logRepo, 1024),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Logger())
	s.router.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	s.router.Use(s.logWorker.Middleware())
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api")
	{
		api.POST("/contact", s.contactHandler.Submit)
		api.POST("/sla", s.slaHandler.Submit)
		api.GET("/sla", s.slaHandler.List)
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	dbHealthy := true
	if err := s.db.Ping(c.Request.Context()); err != nil {
		dbHealthy = false
		log.Printf("Database health check failed: %v", err)
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !dbHealthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"status":    status,
		"service":   "brightline",
		"timestamp": time.Now().Unix(),
		"checks": gin.H{
			"database": dbHealthy,
		},
	})
}

func (s *Server) Run(ctx context.Context, addr string) error {
	s.logWorker.Start(ctx)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	log.Printf("Starting server on %s", addr)
	log.Printf("Environment: %s", s.config.Server.Environment)

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
