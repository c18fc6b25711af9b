package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/pkg/config"
	"github.com/quorum-ai/quorum/pkg/database"
	"github.com/quorum-ai/quorum/pkg/events"
	"github.com/quorum-ai/quorum/pkg/models"
	"github.com/quorum-ai/quorum/pkg/services"
	testdb "github.com/quorum-ai/quorum/test/database"
)

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		RunRetentionDays: 90,
		EventTTL:         1 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
}

func setupServices(t *testing.T) (*database.Client, *services.RunService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewRunService(client.Client), services.NewEventService(client.Client)
}

func createRun(t *testing.T, runService *services.RunService) string {
	t.Helper()
	run, err := runService.CreateRun(context.Background(), &models.PipelineRequest{
		Prompt:          "summarize the incident",
		CandidateModels: []string{"gpt-4o"},
		CorrelationID:   uuid.New().String(),
	})
	require.NoError(t, err)
	return run.ID
}

func TestService_DeletesOldTerminalRuns(t *testing.T) {
	client, runService, eventService := setupServices(t)
	ctx := context.Background()

	runID := createRun(t, runService)
	err := client.PipelineRun.UpdateOneID(runID).
		SetStatus(pipelinerun.StatusCompleted).
		SetCompletedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(testRetentionConfig(), runService, eventService)
	svc.runAll(ctx)

	_, err = runService.GetRun(ctx, runID, false)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestService_PreservesRecentAndActiveRuns(t *testing.T) {
	client, runService, eventService := setupServices(t)
	ctx := context.Background()

	recentID := createRun(t, runService)
	err := client.PipelineRun.UpdateOneID(recentID).
		SetStatus(pipelinerun.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	// Pending runs are never retention targets, however old.
	pendingID := createRun(t, runService)
	err = client.PipelineRun.UpdateOneID(pendingID).
		SetCreatedAt(time.Now().Add(-120 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc := NewService(testRetentionConfig(), runService, eventService)
	svc.runAll(ctx)

	_, err = runService.GetRun(ctx, recentID, false)
	assert.NoError(t, err)
	_, err = runService.GetRun(ctx, pendingID, false)
	assert.NoError(t, err)
}

func TestService_CleansUpExpiredEvents(t *testing.T) {
	client, runService, eventService := setupServices(t)
	ctx := context.Background()

	seed := func(correlationID string, createdAt time.Time) {
		_, err := client.Event.Create().
			SetCorrelationID(correlationID).
			SetChannel(events.RunChannel(correlationID)).
			SetPayload(map[string]any{"event_type": "pipeline_start"}).
			SetCreatedAt(createdAt).
			Save(ctx)
		require.NoError(t, err)
	}
	seed("run-old", time.Now().Add(-2*time.Hour))
	seed("run-fresh", time.Now())

	svc := NewService(testRetentionConfig(), runService, eventService)
	svc.runAll(ctx)

	old, err := eventService.GetCatchupEvents(ctx, events.RunChannel("run-old"), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, old)

	fresh, err := eventService.GetCatchupEvents(ctx, events.RunChannel("run-fresh"), 0, 10)
	require.NoError(t, err)
	assert.Len(t, fresh, 1)
}

func TestService_StartStop(t *testing.T) {
	_, runService, eventService := setupServices(t)

	svc := NewService(testRetentionConfig(), runService, eventService)
	svc.Start(context.Background())
	svc.Stop()

	// Stop again is a no-op rather than a panic.
	svc.Stop()
}
