package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: a persisted
// pipeline event, kept for WebSocket catchup after reconnects. Written by
// the EventPublisher via raw SQL inside the NOTIFY transaction; read
// through ent for catchup queries.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Comment("Auto-increment; clients track catchup position by this"),
		field.String("correlation_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("NOTIFY channel the event was broadcast on"),
		field.JSON("payload", map[string]any{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup query: WHERE channel = ? AND id > ? ORDER BY id
		index.Fields("channel", "id"),
		// TTL cleanup scans by age
		index.Fields("created_at"),
	}
}
