// Package api provides the HTTP and WebSocket surface: pipeline submission
// (synchronous, streaming, or queued), run retrieval, cancellation, event
// catchup, and health.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/quorum-ai/quorum/pkg/config"
	"github.com/quorum-ai/quorum/pkg/database"
	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/queue"
	"github.com/quorum-ai/quorum/pkg/services"
)

// Server is the HTTP server for the quorum API.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	cfg      *config.Config
	podID    string
	dbClient *database.Client

	runService   *services.RunService
	eventService *services.EventService
	executor     *queue.PipelineExecutor
	workerPool   *queue.WorkerPool
	connManager  *events.ConnectionManager

	dashboardDir string
}

// NewServer creates the API server and registers all routes.
// workerPool and connManager may be nil (degraded mode, e.g. in tests).
func NewServer(
	cfg *config.Config,
	podID string,
	dbClient *database.Client,
	runService *services.RunService,
	eventService *services.EventService,
	executor *queue.PipelineExecutor,
	workerPool *queue.WorkerPool,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		echo:         echo.New(),
		cfg:          cfg,
		podID:        podID,
		dbClient:     dbClient,
		runService:   runService,
		eventService: eventService,
		executor:     executor,
		workerPool:   workerPool,
		connManager:  connManager,
	}
	s.registerRoutes()
	return s
}

// SetDashboardDir enables serving the dashboard SPA from the given directory.
// Must be called before Start.
func (s *Server) SetDashboardDir(dir string) {
	s.dashboardDir = dir
	s.setupDashboardRoutes()
}

func (s *Server) registerRoutes() {
	s.echo.Use(securityHeaders())
	s.echo.Use(requestLogger())

	s.echo.GET("/health", s.healthHandler)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/pipelines", s.submitPipelineHandler)
	v1.GET("/runs", s.listRunsHandler)
	v1.GET("/runs/:id", s.getRunHandler)
	v1.POST("/runs/:id/cancel", s.cancelRunHandler)
	v1.GET("/runs/:id/events", s.runEventsHandler)

	s.echo.GET("/ws", s.wsHandler)
}

// Start begins serving on addr. Blocks until the listener fails or Shutdown
// is called; returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server starting", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight requests
// up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// runTimeout returns the configured per-run deadline for synchronous
// execution, falling back to the queue default.
func (s *Server) runTimeout() time.Duration {
	if s.cfg != nil && s.cfg.Queue != nil && s.cfg.Queue.RunTimeout > 0 {
		return s.cfg.Queue.RunTimeout
	}
	return config.DefaultQueueConfig().RunTimeout
}
