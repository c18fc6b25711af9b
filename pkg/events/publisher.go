package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher distributes pipeline events for WebSocket delivery across
// pods. Most events are stored in the events table then broadcast via
// NOTIFY; high-frequency synthesis chunks are broadcast via NOTIFY only.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishEvent routes one sequenced pipeline event to the run's channel.
// synthesis_chunk events are transient (NOTIFY only — lost on disconnect,
// but the full text arrives with synthesis_complete); everything else is
// persisted so reconnecting clients can catch up.
func (p *EventPublisher) PublishEvent(ctx context.Context, correlationID string, evt Event) error {
	payloadJSON, err := json.Marshal(wireEnvelope{Event: evt, CorrelationID: correlationID})
	if err != nil {
		return fmt.Errorf("failed to marshal event %s seq %d: %w", evt.EventType, evt.Sequence, err)
	}

	channel := RunChannel(correlationID)
	if evt.EventType == EventTypeSynthesisChunk {
		return p.notifyOnly(ctx, channel, payloadJSON)
	}
	return p.persistAndNotify(ctx, correlationID, channel, payloadJSON)
}

// PublishRunStatus broadcasts a transient run status change to the global
// runs channel (run list page). Run-channel subscribers learn status from
// the pipeline events themselves.
func (p *EventPublisher) PublishRunStatus(ctx context.Context, payload RunStatusData) error {
	payloadJSON, err := json.Marshal(map[string]any{
		"event_type":     "run_status",
		"timestamp":      time.Now().Format(time.RFC3339Nano),
		"correlation_id": payload.CorrelationID,
		"data":           payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal run status: %w", err)
	}
	return p.notifyOnly(ctx, GlobalRunsChannel, payloadJSON)
}

// ForwardSubscription drains an emitter subscription into the publisher,
// preserving order. The queue worker uses it to bridge a run's in-process
// event stream onto the cross-pod NOTIFY fabric. Returns when the
// subscription closes.
func (p *EventPublisher) ForwardSubscription(ctx context.Context, correlationID string, sub *Subscription) {
	for evt := range sub.Events() {
		if err := p.PublishEvent(ctx, correlationID, evt); err != nil {
			slog.Warn("Failed to publish pipeline event",
				"correlation_id", correlationID,
				"event_type", evt.EventType,
				"sequence", evt.Sequence,
				"error", err)
		}
	}
}

// wireEnvelope is the persisted/NOTIFY shape: the wire event plus the
// correlation id for routing.
type wireEnvelope struct {
	Event
	CorrelationID string `json:"correlation_id"`
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, correlationID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (correlation_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		correlationID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		EventType     string `json:"event_type"`
		Sequence      int    `json:"sequence"`
		CorrelationID string `json:"correlation_id"`
		DBEventID     *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"event_type":     routing.EventType,
		"sequence":       routing.Sequence,
		"correlation_id": routing.CorrelationID,
		"truncated":      true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
