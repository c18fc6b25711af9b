package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/pkg/config"
	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes pipeline runs.
type Worker struct {
	id             string
	podID          string
	client         *ent.Client
	config         *config.QueueConfig
	executor       RunExecutor
	runService     *services.RunService
	eventService   *services.EventService
	eventPublisher *events.EventPublisher
	pool           RunRegistry
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(correlationID string, cancel context.CancelFunc)
	UnregisterRun(correlationID string)
}

// NewWorker creates a new queue worker.
// eventPublisher may be nil (run status broadcasting disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry, runService *services.RunService, eventService *services.EventService, eventPublisher *events.EventPublisher) *Worker {
	return &Worker{
		id:             id,
		podID:          podID,
		client:         client,
		config:         cfg,
		executor:       executor,
		runService:     runService,
		eventService:   eventService,
		eventPublisher: eventPublisher,
		pool:           pool,
		stopCh:         make(chan struct{}),
		status:         WorkerStatusIdle,
		lastActivity:   time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.PipelineRun.Query().
		Where(pipelinerun.StatusEQ(pipelinerun.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next run
	run, err := w.runService.ClaimNextPendingRun(ctx, w.id)
	if err != nil {
		return err
	}
	if run == nil {
		return ErrNoRunsAvailable
	}

	log := slog.With("correlation_id", run.ID, "worker_id", w.id)
	log.Info("Run claimed")

	// Broadcast running status to the global runs channel
	w.publishRunStatus(ctx, run.ID, models.RunStatusRunning)

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create run context with timeout
	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, run.ID)

	// 6. Execute the pipeline
	result := w.executor.Execute(runCtx, run)

	// 6a. Nil-guard: synthesize a terminal result if the executor returned nil
	if result == nil {
		result = w.syntheticResult(runCtx, run)
	}

	// 7. Stop heartbeat before the terminal write
	cancelHeartbeat()

	// 8. Persist terminal state (use background context — run ctx may be cancelled)
	if err := w.runService.FinishRun(context.Background(), result, w.id); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			// The run was orphan-requeued while we were still executing;
			// its state now belongs to whichever worker re-claimed it.
			log.Warn("Run no longer claimed by this worker, discarding result")
			return nil
		}
		log.Error("Failed to persist terminal run state", "error", err)
		return err
	}

	// 8a. Broadcast terminal run status
	w.publishRunStatus(context.Background(), run.ID, result.Status)

	// 9. Cleanup persisted events after a grace period so reconnecting
	// clients can still catch up on the final events.
	w.scheduleEventCleanup(run.ID)

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete", "status", result.Status)
	return nil
}

// syntheticResult builds a terminal result when the executor returned nil.
func (w *Worker) syntheticResult(runCtx context.Context, run *ent.PipelineRun) *models.PipelineRun {
	result := &models.PipelineRun{
		CorrelationID: run.ID,
		Status:        models.RunStatusFailed,
		CompletedAt:   time.Now(),
	}
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.Error = &models.RunError{
			Kind:    models.ErrorKindCancelled,
			Message: fmt.Sprintf("run timed out after %v", w.config.RunTimeout),
		}
	case errors.Is(runCtx.Err(), context.Canceled):
		result.Error = &models.RunError{
			Kind:    models.ErrorKindCancelled,
			Message: "run cancelled",
		}
	default:
		result.Error = &models.RunError{
			Kind:    models.ErrorKindSynthesisFailed,
			Message: "executor returned nil result",
		}
	}
	return result
}

// runHeartbeat periodically refreshes the claim for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, correlationID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.runService.Heartbeat(ctx, correlationID, w.id); err != nil {
				slog.Warn("Heartbeat update failed", "correlation_id", correlationID, "error", err)
			}
		}
	}
}

// publishRunStatus broadcasts a run status change to the global runs channel
// for real-time WebSocket delivery. Non-blocking: errors are logged.
func (w *Worker) publishRunStatus(ctx context.Context, correlationID string, status models.RunStatus) {
	if w.eventPublisher == nil {
		return
	}
	if err := w.eventPublisher.PublishRunStatus(ctx, events.RunStatusData{
		CorrelationID: correlationID,
		Status:        status,
	}); err != nil {
		slog.Warn("Failed to publish run status",
			"correlation_id", correlationID, "status", status, "error", err)
	}
}

// scheduleEventCleanup schedules deletion of persisted catchup events after a
// 60-second grace period, allowing WebSocket clients to receive final events.
func (w *Worker) scheduleEventCleanup(correlationID string) {
	if w.eventService == nil {
		return
	}
	time.AfterFunc(60*time.Second, func() {
		if _, err := w.eventService.CleanupRunEvents(context.Background(), correlationID); err != nil {
			slog.Warn("Failed to cleanup run events after grace period",
				"correlation_id", correlationID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, correlationID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = correlationID
	w.lastActivity = time.Now()
}
