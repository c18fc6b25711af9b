package services

import (
	"context"
	"fmt"
	"time"

	"github.com/quorum-ai/quorum/ent"
	"github.com/quorum-ai/quorum/ent/event"
	"github.com/quorum-ai/quorum/pkg/events"
)

// EventService manages persisted pipeline events for WebSocket catchup
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetCatchupEvents retrieves up to limit events on a channel with an ID
// greater than sinceID, in ID order. Implements events.CatchupQuerier.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(int64(sinceID)),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catchup events: %w", err)
	}

	out := make([]events.CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, events.CatchupEvent{
			ID:      int(row.ID),
			Payload: row.Payload,
		})
	}

	return out, nil
}

// GetEventsSince retrieves all events on a channel since a given ID
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int) ([]*ent.Event, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(int64(sinceID)),
		).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return rows, nil
}

// CleanupRunEvents removes all persisted events for a run
func (s *EventService) CleanupRunEvents(ctx context.Context, correlationID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CorrelationIDEQ(correlationID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup run events: %w", err)
	}

	return count, nil
}

// CleanupOldEvents removes events older than TTL
func (s *EventService) CleanupOldEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}

	return count, nil
}
