package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/pkg/config"
	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/services"
	testdb "github.com/quorum-ai/quorum/test/database"
)

// fakeExecutor returns canned terminal results and records what it ran.
type fakeExecutor struct {
	mu        sync.Mutex
	executed  []string
	returnNil bool
	blockCtx  bool // block until ctx is done, then report cancelled
}

func (f *fakeExecutor) Execute(ctx context.Context, run *ent.PipelineRun) *models.PipelineRun {
	f.mu.Lock()
	f.executed = append(f.executed, run.ID)
	f.mu.Unlock()

	if f.blockCtx {
		<-ctx.Done()
		return &models.PipelineRun{
			CorrelationID: run.ID,
			Status:        models.RunStatusFailed,
			Error:         &models.RunError{Kind: models.ErrorKindCancelled, Message: "run cancelled"},
			CompletedAt:   time.Now(),
		}
	}
	if f.returnNil {
		return nil
	}
	return &models.PipelineRun{
		CorrelationID:  run.ID,
		Status:         models.RunStatusCompleted,
		FinalText:      "synthesized answer",
		SynthesisModel: "gpt-4o",
		CompletedAt:    time.Now(),
		Stages: []models.StageResult{
			{
				StageName: models.StageInitialResponse,
				Success:   true,
				StartedAt: time.Now(), CompletedAt: time.Now(),
				Results: []models.ModelCallResult{
					{ModelID: "gpt-4o", Status: models.CallStatusSuccess, Text: "draft"},
				},
			},
		},
	}
}

func (f *fakeExecutor) executedRuns() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.executed...)
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 5 * time.Millisecond
	cfg.HeartbeatInterval = 50 * time.Millisecond
	cfg.RunTimeout = 5 * time.Second
	return cfg
}

func newTestPool(t *testing.T, executor RunExecutor, cfg *config.QueueConfig) (*WorkerPool, *services.RunService) {
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	eventService := services.NewEventService(client.Client)
	pool := NewWorkerPool("pod-1", client.Client, cfg, executor, runService, eventService, nil)
	t.Cleanup(pool.Stop)
	return pool, runService
}

func waitForStatus(t *testing.T, runService *services.RunService, id string, want pipelinerun.Status) *ent.PipelineRun {
	t.Helper()
	var got *ent.PipelineRun
	require.Eventually(t, func() bool {
		run, err := runService.GetRun(context.Background(), id, false)
		if err != nil {
			return false
		}
		got = run
		return run.Status == want
	}, 5*time.Second, 20*time.Millisecond)
	return got
}

func TestWorkerProcessesPendingRun(t *testing.T) {
	executor := &fakeExecutor{}
	cfg := testQueueConfig()
	pool, runService := newTestPool(t, executor, cfg)

	created, err := runService.CreateRun(context.Background(), &models.PipelineRequest{
		Prompt:          "which index fits this workload",
		CandidateModels: []string{"gpt-4o"},
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(context.Background()))

	run := waitForStatus(t, runService, created.ID, pipelinerun.StatusCompleted)
	assert.Equal(t, "synthesized answer", run.FinalText)
	assert.Equal(t, "gpt-4o", run.SynthesisModel)
	assert.Equal(t, []string{created.ID}, executor.executedRuns())

	// Stage results were persisted by the worker
	full, err := runService.GetRun(context.Background(), created.ID, true)
	require.NoError(t, err)
	require.Len(t, full.Edges.Stages, 1)
}

func TestWorkerNilResultGuard(t *testing.T) {
	executor := &fakeExecutor{returnNil: true}
	cfg := testQueueConfig()
	pool, runService := newTestPool(t, executor, cfg)

	created, err := runService.CreateRun(context.Background(), &models.PipelineRequest{
		Prompt:          "doomed",
		CandidateModels: []string{"gpt-4o"},
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(context.Background()))

	run := waitForStatus(t, runService, created.ID, pipelinerun.StatusFailed)
	require.NotNil(t, run.ErrorKind)
	assert.Equal(t, string(models.ErrorKindSynthesisFailed), *run.ErrorKind)
}

func TestPoolCancelRun(t *testing.T) {
	executor := &fakeExecutor{blockCtx: true}
	cfg := testQueueConfig()
	pool, runService := newTestPool(t, executor, cfg)

	created, err := runService.CreateRun(context.Background(), &models.PipelineRequest{
		Prompt:          "cancel mid-flight",
		CandidateModels: []string{"gpt-4o"},
	})
	require.NoError(t, err)

	require.NoError(t, pool.Start(context.Background()))

	// Wait for the worker to claim and start executing
	require.Eventually(t, func() bool {
		return len(executor.executedRuns()) == 1
	}, 5*time.Second, 20*time.Millisecond)

	assert.True(t, pool.CancelRun(created.ID))

	run := waitForStatus(t, runService, created.ID, pipelinerun.StatusFailed)
	require.NotNil(t, run.ErrorKind)
	assert.Equal(t, string(models.ErrorKindCancelled), *run.ErrorKind)

	// Unknown run is not cancellable on this pod
	assert.False(t, pool.CancelRun("not-here"))
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	ctx := context.Background()

	created, err := runService.CreateRun(ctx, &models.PipelineRequest{
		Prompt:          "orphaned by crash",
		CandidateModels: []string{"gpt-4o"},
	})
	require.NoError(t, err)
	claimed, err := runService.ClaimNextPendingRun(ctx, "pod-1-worker-0")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Another pod's runs are untouched
	other, err := runService.CreateRun(ctx, &models.PipelineRequest{
		Prompt:          "other pod",
		CandidateModels: []string{"gpt-4o"},
	})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	otherClaimed, err := runService.ClaimNextPendingRun(ctx, "pod-2-worker-0")
	require.NoError(t, err)
	require.NotNil(t, otherClaimed)
	require.Equal(t, other.ID, otherClaimed.ID)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, runService, "pod-1"))

	mine, err := runService.GetRun(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusPending, mine.Status)

	theirs, err := runService.GetRun(ctx, other.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusRunning, theirs.Status)
}

func TestPoolHealth(t *testing.T) {
	executor := &fakeExecutor{}
	cfg := testQueueConfig()
	pool, runService := newTestPool(t, executor, cfg)

	require.NoError(t, pool.Start(context.Background()))

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Equal(t, cfg.MaxConcurrentRuns, health.MaxConcurrent)

	_, err := runService.CreateRun(context.Background(), &models.PipelineRequest{
		Prompt:          "depth probe",
		CandidateModels: []string{"gpt-4o"},
	})
	require.NoError(t, err)

	// The run drains quickly, so just assert the health snapshot stays coherent
	require.Eventually(t, func() bool {
		h := pool.Health()
		return h.QueueDepth == 0 && h.ActiveRuns == 0
	}, 5*time.Second, 50*time.Millisecond)
}
