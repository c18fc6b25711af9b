// Quorum orchestrator server - provides the HTTP API, manages queue workers,
// and runs the three-stage consensus pipeline against the provider service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quorum-ai/quorum/pkg/api"
	"github.com/quorum-ai/quorum/pkg/cleanup"
	"github.com/quorum-ai/quorum/pkg/config"
	"github.com/quorum-ai/quorum/pkg/database"
	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/pipeline"
	"github.com/quorum-ai/quorum/pkg/provider"
	"github.com/quorum-ai/quorum/pkg/queue"
	"github.com/quorum-ai/quorum/pkg/resilience"
	"github.com/quorum-ai/quorum/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting quorum",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	runService := services.NewRunService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup: requeue runs this pod abandoned
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, runService, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal - continue
	}

	// 5. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Provider client and pipeline executor
	// Note: grpc.NewClient uses lazy dialing; the connection happens on first RPC
	providerAddr := getEnv("PROVIDER_SERVICE_ADDR", "localhost:50051")
	providerClient, err := provider.NewGRPCClient(providerAddr)
	if err != nil {
		slog.Error("Failed to initialize provider client", "addr", providerAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := providerClient.Close(); err != nil {
			slog.Error("Error closing provider client", "error", err)
		}
	}()
	slog.Info("Provider client initialized", "addr", providerAddr)

	registry := resilience.NewRegistry(cfg.Models.ResilienceConfigs())
	adapter := provider.NewAdapter(providerClient, registry, cfg.Models.Timeout)
	selector := pipeline.NewSelector(cfg.Models.Priority)
	executor := queue.NewPipelineExecutor(adapter, selector, eventPublisher, cfg.Defaults.StreamBuffer)

	// 7. Background retention
	cleanupService := cleanup.NewService(cfg.Retention, runService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, runService, eventService, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Create HTTP server
	httpServer := api.NewServer(cfg, podID, dbClient, runService, eventService, executor, workerPool, connManager)
	if dashboardDir := os.Getenv("DASHBOARD_DIR"); dashboardDir != "" {
		httpServer.SetDashboardDir(dashboardDir)
	}

	// 10. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Quorum started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"models", cfg.Stats().Models)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers first, then the HTTP server
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
