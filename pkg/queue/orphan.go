package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu              sync.Mutex
	lastOrphanScan  time.Time
	orphansRequeued int
}

// runOrphanDetection periodically scans for orphaned runs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running runs with stale heartbeats and
// returns them to the pending queue. Pipeline execution is stateless (no
// partial state survives a worker crash), so a requeued run simply starts
// over on whichever worker claims it next.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphaned, err := p.runService.FindOrphanedRuns(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphaned) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphaned))

	requeued := 0
	for _, run := range orphaned {
		if err := p.recoverOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to recover orphaned run",
				"correlation_id", run.ID,
				"error", err)
			continue
		}
		requeued++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun requeues a single orphaned run. The conditional update
// inside RequeueRun guards against racing the original worker's late
// completion; losing that race means the run finished and needs nothing.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, run *ent.PipelineRun) error {
	lastHeartbeat := "unknown"
	if run.LastHeartbeat != nil {
		lastHeartbeat = run.LastHeartbeat.Format(time.RFC3339)
	}
	workerID := "unknown"
	if run.WorkerID != nil {
		workerID = *run.WorkerID
	}

	if err := p.runService.RequeueRun(ctx, run.ID); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			slog.Debug("Orphaned run finished before requeue",
				"correlation_id", run.ID)
			return nil
		}
		return err
	}

	slog.Warn("Orphaned run requeued",
		"correlation_id", run.ID,
		"old_worker_id", workerID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time recovery of runs owned by this
// pod that were running when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, runService *services.RunService, podID string) error {
	orphaned, err := client.PipelineRun.Query().
		Where(
			pipelinerun.StatusEQ(pipelinerun.StatusRunning),
			pipelinerun.WorkerIDHasPrefix(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphaned) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphaned))

	for _, run := range orphaned {
		if err := runService.RequeueRun(ctx, run.ID); err != nil {
			slog.Error("Failed to requeue startup orphan",
				"correlation_id", run.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "correlation_id", run.ID)
	}

	return nil
}
