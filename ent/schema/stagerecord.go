package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageRecord holds the schema definition for the StageRecord entity: one
// completed stage of a pipeline run.
type StageRecord struct {
	ent.Schema
}

// Fields of the StageRecord.
func (StageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),

		field.String("stage_name").
			Comment("initial_response, peer_review_and_revision, or ultra_synthesis"),
		field.Int("stage_index").
			Comment("Position in the pipeline: 0, 1, 2"),
		field.Bool("success"),

		field.Time("started_at"),
		field.Time("completed_at"),
	}
}

// Edges of the StageRecord.
func (StageRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PipelineRun.Type).
			Ref("stages").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("model_calls", ModelCall.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the StageRecord.
func (StageRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Unique constraint for stage ordering within a run
		index.Fields("run_id", "stage_index").
			Unique(),
	}
}
