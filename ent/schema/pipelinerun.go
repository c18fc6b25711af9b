package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for the PipelineRun entity: one
// accepted pipeline request and its terminal outcome.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("correlation_id").
			Unique().
			Immutable(),

		// Request
		field.Text("prompt").
			Immutable(),
		field.JSON("candidate_models", []string{}).
			Immutable(),
		field.JSON("options", map[string]any{}).
			Optional(),
		field.JSON("stream_stages", []string{}).
			Optional(),
		field.Bool("peer_review_fatal").
			Default(false).
			Immutable(),

		// Lifecycle
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Text("final_text").
			Optional().
			Comment("Set only on completed runs"),
		field.String("synthesis_model").
			Optional(),

		// Terminal failure detail
		field.String("error_kind").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.JSON("error_models", []string{}).
			Optional().
			Comment("Models implicated in the run-level failure"),

		// Queue bookkeeping
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("Pod/worker that claimed this run"),
		field.Time("last_heartbeat").
			Optional().
			Nillable().
			Comment("Updated while processing; drives orphan detection"),

		// Timestamps
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PipelineRun.
func (PipelineRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("stages", StageRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		// Pending-run claim query and orphan scans filter on status.
		index.Fields("status", "created_at"),
	}
}
