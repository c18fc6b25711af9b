// Package events provides the pipeline event contract: the per-run emitter
// with its monotonic sequence counter, plus real-time delivery via WebSocket
// and PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Event flow:
//
//	Controller ──▶ Emitter ──▶ subscribers (SSE handler, collector,
//	                           EventPublisher → Postgres NOTIFY →
//	                           NotifyListener → ConnectionManager → WS)
//
// The controller only ever writes to the Emitter; delivery, backpressure,
// and transport concerns live on the subscriber side.
package events

import "time"

// Event types emitted over a run's lifetime. Consumers must tolerate
// unknown future values and use Sequence to detect gaps.
const (
	EventTypePipelineStart     = "pipeline_start"
	EventTypeStageStart        = "stage_start"
	EventTypeModelStart        = "model_start"
	EventTypeModelResponse     = "model_response"
	EventTypeStageComplete     = "stage_complete"
	EventTypeStageError        = "stage_error"
	EventTypeSynthesisStart    = "synthesis_start"
	EventTypeSynthesisChunk    = "synthesis_chunk"
	EventTypeSynthesisComplete = "synthesis_complete"
	EventTypePipelineComplete  = "pipeline_complete"
	EventTypePipelineError     = "pipeline_error"
)

// Terminal reports whether the event type ends a run's event stream.
func Terminal(eventType string) bool {
	return eventType == EventTypePipelineComplete || eventType == EventTypePipelineError
}

// Event is the wire envelope for every pipeline event, regardless of
// transport. Sequence is strictly increasing within a run, starting at 1.
type Event struct {
	EventType string `json:"event_type"`
	Sequence  int    `json:"sequence"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
	Data      any    `json:"data,omitempty"`
}

// NewEvent stamps an event with the current time. Sequence is assigned by
// the Emitter.
func NewEvent(eventType string, data any) Event {
	return Event{
		EventType: eventType,
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Data:      data,
	}
}

// GlobalRunsChannel carries run-level status events for the run list view.
const GlobalRunsChannel = "runs"

// runChannelPrefix prefixes per-run channel names.
const runChannelPrefix = "run:"

// RunChannel returns the channel name for a specific run's events.
// Format: "run:{correlation_id}"
func RunChannel(correlationID string) string {
	return runChannelPrefix + correlationID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "run:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
