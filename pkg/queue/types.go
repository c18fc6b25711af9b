// Package queue provides pipeline run queue management and processing
// infrastructure: a worker pool that claims pending runs from the database,
// executes them, and recovers runs orphaned by dead workers.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor is the interface for run processing.
//
// The executor owns the whole pipeline lifecycle for one run: fan-out, peer
// review, synthesis, and event emission. It always returns a terminal
// models.PipelineRun; the worker only handles claiming, heartbeat, terminal
// persistence, and event cleanup.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.PipelineRun) *models.PipelineRun
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	ActiveRuns      int            `json:"active_runs"`
	MaxConcurrent   int            `json:"max_concurrent"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
