package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/pkg/models"
	testdb "github.com/quorum-ai/quorum/test/database"
)

func newRequest(prompt string, candidates ...string) *models.PipelineRequest {
	return &models.PipelineRequest{
		Prompt:          prompt,
		CandidateModels: candidates,
	}
}

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("creates pending run with generated correlation id", func(t *testing.T) {
		req := newRequest("compare caching strategies", "gpt-4o", "claude-sonnet")

		run, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, req.CorrelationID, run.ID)
		assert.Equal(t, pipelinerun.StatusPending, run.Status)
		assert.Equal(t, []string{"gpt-4o", "claude-sonnet"}, run.CandidateModels)
		assert.Nil(t, run.StartedAt)
	})

	t.Run("honors caller-provided correlation id", func(t *testing.T) {
		req := newRequest("pick a queue library", "gpt-4o")
		req.CorrelationID = "run-fixed-id"

		run, err := service.CreateRun(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "run-fixed-id", run.ID)
	})

	t.Run("duplicate correlation id returns ErrAlreadyExists", func(t *testing.T) {
		req := newRequest("pick a queue library", "gpt-4o")
		req.CorrelationID = "run-dup"

		_, err := service.CreateRun(ctx, req)
		require.NoError(t, err)

		req2 := newRequest("pick a queue library", "gpt-4o")
		req2.CorrelationID = "run-dup"
		_, err = service.CreateRun(ctx, req2)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects invalid requests", func(t *testing.T) {
		_, err := service.CreateRun(ctx, newRequest("", "gpt-4o"))
		assert.True(t, IsValidationError(err))

		_, err = service.CreateRun(ctx, newRequest("no models"))
		assert.True(t, IsValidationError(err))

		_, err = service.CreateRun(ctx, newRequest("dups", "gpt-4o", "gpt-4o"))
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_ClaimNextPendingRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("returns nil when queue is empty", func(t *testing.T) {
		run, err := service.ClaimNextPendingRun(ctx, "worker-1")
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("claims oldest pending run first", func(t *testing.T) {
		first, err := service.CreateRun(ctx, newRequest("first", "gpt-4o"))
		require.NoError(t, err)
		// created_at ordering needs distinct timestamps
		time.Sleep(10 * time.Millisecond)
		_, err = service.CreateRun(ctx, newRequest("second", "gpt-4o"))
		require.NoError(t, err)

		claimed, err := service.ClaimNextPendingRun(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, pipelinerun.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.WorkerID)
		assert.Equal(t, "worker-1", *claimed.WorkerID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastHeartbeat)
	})

	t.Run("each run is claimed exactly once", func(t *testing.T) {
		claimed := map[string]bool{}
		for i := 0; i < 2; i++ {
			run, err := service.ClaimNextPendingRun(ctx, fmt.Sprintf("worker-%d", i))
			require.NoError(t, err)
			if run != nil {
				assert.False(t, claimed[run.ID])
				claimed[run.ID] = true
			}
		}
		// One run left over from the previous subtest
		assert.Len(t, claimed, 1)
	})
}

func TestRunService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	_, err := service.CreateRun(ctx, newRequest("heartbeat me", "gpt-4o"))
	require.NoError(t, err)

	claimed, err := service.ClaimNextPendingRun(ctx, "worker-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("refreshes the claim", func(t *testing.T) {
		before := *claimed.LastHeartbeat
		time.Sleep(10 * time.Millisecond)
		err := service.Heartbeat(ctx, claimed.ID, "worker-1")
		require.NoError(t, err)

		run, err := service.GetRun(ctx, claimed.ID, false)
		require.NoError(t, err)
		assert.True(t, run.LastHeartbeat.After(before))
	})

	t.Run("rejects a stale worker", func(t *testing.T) {
		err := service.Heartbeat(ctx, claimed.ID, "worker-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown run", func(t *testing.T) {
		err := service.Heartbeat(ctx, uuid.New().String(), "worker-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_FinishRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, newRequest("finish me", "gpt-4o", "claude-sonnet"))
	require.NoError(t, err)
	_, err = service.ClaimNextPendingRun(ctx, "worker-1")
	require.NoError(t, err)

	now := time.Now()
	run := &models.PipelineRun{
		CorrelationID: created.ID,
		Status:        models.RunStatusCompleted,
		FinalText:     "use write-through caching",
		SynthesisModel: "claude-sonnet",
		StartedAt:      now,
		CompletedAt:    now.Add(3 * time.Second),
		Stages: []models.StageResult{
			{
				StageName: models.StageInitialResponse,
				Success:   true,
				StartedAt: now, CompletedAt: now.Add(time.Second),
				Results: []models.ModelCallResult{
					{ModelID: "gpt-4o", Status: models.CallStatusSuccess, Text: "a", Usage: models.Usage{TotalTokens: 10, Attempts: 1}},
					{ModelID: "claude-sonnet", Status: models.CallStatusFailed, Err: &models.CallError{Kind: models.ErrorKindTimeout, Message: "deadline exceeded"}},
				},
			},
		},
	}

	t.Run("rejects non-terminal status", func(t *testing.T) {
		bad := &models.PipelineRun{CorrelationID: created.ID, Status: models.RunStatusRunning}
		err := service.FinishRun(ctx, bad, "worker-1")
		assert.True(t, IsValidationError(err))
	})

	t.Run("persists stages, calls, and outcome", func(t *testing.T) {
		err := service.FinishRun(ctx, run, "worker-1")
		require.NoError(t, err)

		stored, err := service.GetRun(ctx, created.ID, true)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusCompleted, stored.Status)
		assert.Equal(t, "use write-through caching", stored.FinalText)
		assert.Equal(t, "claude-sonnet", stored.SynthesisModel)
		require.Len(t, stored.Edges.Stages, 1)

		stage := stored.Edges.Stages[0]
		assert.Equal(t, models.StageInitialResponse, stage.StageName)
		assert.True(t, stage.Success)
		require.Len(t, stage.Edges.ModelCalls, 2)

		// Call order follows result order
		assert.Equal(t, "gpt-4o", stage.Edges.ModelCalls[0].ModelID)
		assert.Equal(t, 0, stage.Edges.ModelCalls[0].CallIndex)
		failed := stage.Edges.ModelCalls[1]
		assert.Equal(t, "claude-sonnet", failed.ModelID)
		require.NotNil(t, failed.ErrorKind)
		assert.Equal(t, string(models.ErrorKindTimeout), *failed.ErrorKind)
	})

	t.Run("persists failed run error detail", func(t *testing.T) {
		failedReq, err := service.CreateRun(ctx, newRequest("doomed", "gpt-4o"))
		require.NoError(t, err)
		_, err = service.ClaimNextPendingRun(ctx, "worker-1")
		require.NoError(t, err)

		err = service.FinishRun(ctx, &models.PipelineRun{
			CorrelationID: failedReq.ID,
			Status:        models.RunStatusFailed,
			Error: &models.RunError{
				Kind:    models.ErrorKindAllProvidersFailed,
				Message: "all candidate models failed in stage initial_response",
				Models:  []string{"gpt-4o"},
			},
			CompletedAt: time.Now(),
		}, "worker-1")
		require.NoError(t, err)

		stored, err := service.GetRun(ctx, failedReq.ID, false)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusFailed, stored.Status)
		require.NotNil(t, stored.ErrorKind)
		assert.Equal(t, string(models.ErrorKindAllProvidersFailed), *stored.ErrorKind)
		assert.Equal(t, []string{"gpt-4o"}, stored.ErrorModels)
	})
}

func TestRunService_FinishRunStaleClaimant(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	created, err := service.CreateRun(ctx, newRequest("contended", "gpt-4o"))
	require.NoError(t, err)
	_, err = service.ClaimNextPendingRun(ctx, "worker-1")
	require.NoError(t, err)

	// The run is orphan-requeued away from worker-1 and re-claimed.
	require.NoError(t, service.RequeueRun(ctx, created.ID))
	_, err = service.ClaimNextPendingRun(ctx, "worker-2")
	require.NoError(t, err)

	staleResult := &models.PipelineRun{
		CorrelationID: created.ID,
		Status:        models.RunStatusFailed,
		Error:         &models.RunError{Kind: models.ErrorKindCancelled, Message: "stale"},
		CompletedAt:   time.Now(),
		Stages: []models.StageResult{
			{StageName: models.StageInitialResponse, StartedAt: time.Now(), CompletedAt: time.Now()},
		},
	}

	// The late finish from the original claimant writes nothing: no status
	// clobber, no stage rows.
	err = service.FinishRun(ctx, staleResult, "worker-1")
	assert.ErrorIs(t, err, ErrConcurrentModification)

	stored, err := service.GetRun(ctx, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusRunning, stored.Status)
	assert.Empty(t, stored.Edges.Stages)

	// The current claimant still finishes normally.
	current := &models.PipelineRun{
		CorrelationID: created.ID,
		Status:        models.RunStatusCompleted,
		FinalText:     "fresh result",
		CompletedAt:   time.Now(),
	}
	require.NoError(t, service.FinishRun(ctx, current, "worker-2"))

	stored, err = service.GetRun(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, stored.Status)
	assert.Equal(t, "fresh result", stored.FinalText)

	// A finish for a run that never existed reports not found.
	missing := &models.PipelineRun{
		CorrelationID: uuid.New().String(),
		Status:        models.RunStatusFailed,
		CompletedAt:   time.Now(),
	}
	assert.ErrorIs(t, service.FinishRun(ctx, missing, "worker-1"), ErrNotFound)
}

func TestRunService_ListRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.CreateRun(ctx, newRequest(fmt.Sprintf("prompt %d", i), "gpt-4o"))
		require.NoError(t, err)
	}
	claimed, err := service.ClaimNextPendingRun(ctx, "worker-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListRuns(ctx, models.RunFilters{Status: "pending"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)

		resp, err = service.ListRuns(ctx, models.RunFilters{Status: "running"})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("paginates with defaults", func(t *testing.T) {
		resp, err := service.ListRuns(ctx, models.RunFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Runs, 2)
		assert.Equal(t, 2, resp.Limit)
	})
}

func TestRunService_CancelPendingRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("cancels a pending run", func(t *testing.T) {
		run, err := service.CreateRun(ctx, newRequest("cancel me", "gpt-4o"))
		require.NoError(t, err)

		err = service.CancelPendingRun(ctx, run.ID)
		require.NoError(t, err)

		stored, err := service.GetRun(ctx, run.ID, false)
		require.NoError(t, err)
		assert.Equal(t, pipelinerun.StatusFailed, stored.Status)
		require.NotNil(t, stored.ErrorKind)
		assert.Equal(t, string(models.ErrorKindCancelled), *stored.ErrorKind)
	})

	t.Run("claimed run reports concurrent modification", func(t *testing.T) {
		run, err := service.CreateRun(ctx, newRequest("already running", "gpt-4o"))
		require.NoError(t, err)
		claimed, err := service.ClaimNextPendingRun(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		require.Equal(t, run.ID, claimed.ID)

		err = service.CancelPendingRun(ctx, run.ID)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})

	t.Run("unknown run", func(t *testing.T) {
		err := service.CancelPendingRun(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_OrphanDetection(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewRunService(client.Client)
	ctx := context.Background()

	run, err := service.CreateRun(ctx, newRequest("orphan me", "gpt-4o"))
	require.NoError(t, err)
	claimed, err := service.ClaimNextPendingRun(ctx, "worker-dead")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Backdate the heartbeat to simulate a dead worker
	err = client.Client.PipelineRun.UpdateOneID(run.ID).
		SetLastHeartbeat(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	orphans, err := service.FindOrphanedRuns(ctx, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, run.ID, orphans[0].ID)

	err = service.RequeueRun(ctx, run.ID)
	require.NoError(t, err)

	stored, err := service.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusPending, stored.Status)
	assert.Nil(t, stored.WorkerID)
	assert.Nil(t, stored.LastHeartbeat)

	// Requeued run is claimable again
	reclaimed, err := service.ClaimNextPendingRun(ctx, "worker-alive")
	require.NoError(t, err)
	require.NotNil(t, reclaimed)
	assert.Equal(t, run.ID, reclaimed.ID)
}

func TestRunService_CrossReplicaClaim(t *testing.T) {
	// Two pods with independent pools share one schema, as in a real
	// deployment: a run submitted through one pod's API is picked up by
	// another pod's worker, and only one claimant wins.
	shared := testdb.NewSharedTestDB(t)
	serviceA := NewRunService(shared.NewClient(t).Client)
	serviceB := NewRunService(shared.NewClient(t).Client)
	ctx := context.Background()

	run, err := serviceA.CreateRun(ctx, newRequest("cross-pod pickup", "gpt-4o"))
	require.NoError(t, err)

	claimed, err := serviceB.ClaimNextPendingRun(ctx, "pod-b-worker-0")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, run.ID, claimed.ID)

	// The submitting pod sees the claim and cannot claim it again.
	stored, err := serviceA.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusRunning, stored.Status)

	none, err := serviceA.ClaimNextPendingRun(ctx, "pod-a-worker-0")
	require.NoError(t, err)
	assert.Nil(t, none)
}
