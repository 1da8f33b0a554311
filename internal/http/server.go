package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/bearodactyl/apiodactyl/internal/auth/http"
	authUseCase "github.com/bearodactyl/apiodactyl/internal/auth/usecase"
	"github.com/bearodactyl/apiodactyl/internal/config"
	"github.com/bearodactyl/apiodactyl/internal/metrics"
)

// Server is the main API server. Every route under /v1 requires a valid API
// key; the key management routes additionally require the admin capability.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer builds the API server with its full middleware chain and routes.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	apiKeyUseCase authUseCase.APIKeyUseCase,
	apiKeyHandler *authHTTP.APIKeyHandler,
	metricsProvider *metrics.Provider,
) *Server {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/v1")
	v1.Use(authHTTP.AuthenticationMiddleware(apiKeyUseCase, logger))
	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, logger))
	}

	keys := v1.Group("/keys")
	keys.Use(authHTTP.RequireAdminMiddleware(logger))
	keys.POST("", apiKeyHandler.CreateHandler)
	keys.GET("", apiKeyHandler.ListHandler)
	keys.DELETE("", apiKeyHandler.RevokeHandler)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
