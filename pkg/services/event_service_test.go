package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorum-ai/quorum/pkg/events"
	testdb "github.com/quorum-ai/quorum/test/database"
)

func seedEvent(t *testing.T, service *EventService, correlationID, channel string, eventType string, createdAt time.Time) int64 {
	t.Helper()
	evt, err := service.client.Event.Create().
		SetCorrelationID(correlationID).
		SetChannel(channel).
		SetPayload(map[string]any{
			"event_type":     eventType,
			"correlation_id": correlationID,
		}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return evt.ID
}

func TestEventService_GetCatchupEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	now := time.Now()
	channel := events.RunChannel("run-1")
	id1 := seedEvent(t, service, "run-1", channel, "pipeline_start", now)
	id2 := seedEvent(t, service, "run-1", channel, "stage_start", now)
	id3 := seedEvent(t, service, "run-1", channel, "stage_complete", now)
	seedEvent(t, service, "run-2", events.RunChannel("run-2"), "pipeline_start", now)

	t.Run("returns events after sinceID in order", func(t *testing.T) {
		got, err := service.GetCatchupEvents(ctx, channel, int(id1), 100)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int(id2), got[0].ID)
		assert.Equal(t, int(id3), got[1].ID)
		assert.Equal(t, "stage_start", got[0].Payload["event_type"])
	})

	t.Run("honors limit", func(t *testing.T) {
		got, err := service.GetCatchupEvents(ctx, channel, 0, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int(id1), got[0].ID)
	})

	t.Run("other channels are not leaked", func(t *testing.T) {
		got, err := service.GetCatchupEvents(ctx, events.RunChannel("run-2"), 0, 100)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "run-2", got[0].Payload["correlation_id"])
	})
}

func TestEventService_Cleanup(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewEventService(client.Client)
	ctx := context.Background()

	now := time.Now()
	seedEvent(t, service, "run-1", events.RunChannel("run-1"), "pipeline_start", now.Add(-48*time.Hour))
	seedEvent(t, service, "run-1", events.RunChannel("run-1"), "pipeline_complete", now)
	seedEvent(t, service, "run-2", events.RunChannel("run-2"), "pipeline_start", now)

	t.Run("cleanup by run", func(t *testing.T) {
		count, err := service.CleanupRunEvents(ctx, "run-2")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("cleanup by age", func(t *testing.T) {
		count, err := service.CleanupOldEvents(ctx, 24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		remaining, err := service.GetEventsSince(ctx, events.RunChannel("run-1"), 0)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "pipeline_complete", remaining[0].Payload["event_type"])
	})
}
