package api

import (
	"context"
	"net/http"

	"resumewright/internal/api/handlers"
	"resumewright/internal/api/middleware"
	"resumewright/internal/pkg/config"
	"resumewright/internal/pkg/logger"
	"resumewright/internal/pkg/pool"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	config *config.AppConfig
	logger logger.Logger
	router *gin.Engine
	pool   *pool.WorkerPool
	perf   *middleware.PerformanceMonitor
}

// NewServer creates a new HTTP server backed by a bounded conversion
// worker pool sized from cfg.Worker.PoolSize.
func NewServer(cfg *config.AppConfig, log logger.Logger) *Server {
	if cfg.Logger.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	workerPool := pool.NewWorkerPool(cfg.Worker.PoolSize, log.With("component", "worker_pool"))
	workerPool.Start(context.Background(), runConversionJob)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	perf := middleware.NewPerformanceMonitor(zapLogger, int64(cfg.Worker.QueueSize))

	server := &Server{
		config: cfg,
		logger: log.With("component", "server"),
		router: router,
		pool:   workerPool,
		perf:   perf,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// runConversionJob adapts the pool's generic JobHandler signature to the
// func() closures ConvertHandler submits.
func runConversionJob(job interface{}) error {
	fn, ok := job.(func())
	if !ok {
		return nil
	}
	fn()
	return nil
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Shutdown stops the conversion worker pool gracefully.
func (s *Server) Shutdown(ctx context.Context) {
	s.pool.Stop(ctx)
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.logger))
	s.router.Use(middleware.ErrorHandler(s.logger))
	s.router.Use(middleware.RateLimit())
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.logger)
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/ready", healthHandler.Ready)

	metricsHandler := handlers.NewMetricsHandler(s.logger, s.pool, s.perf)
	s.router.GET("/metrics", metricsHandler.Metrics)

	authConfig := middleware.AuthConfig{
		Enabled: s.config.Auth.Enabled,
		APIKeys: s.config.Auth.APIKeys,
	}

	v1 := s.router.Group("/api/v1")
	v1.Use(middleware.Auth(authConfig, s.logger))
	v1.Use(s.perf.PerformanceMiddleware())
	{
		convertHandler := handlers.NewConvertHandler(s.logger, s.pool)
		v1.POST("/convert", convertHandler.Convert)
		v1.POST("/metadata", convertHandler.Metadata)
		v1.POST("/fonts", convertHandler.Fonts)
		v1.POST("/ats", convertHandler.ATS)
	}
}
