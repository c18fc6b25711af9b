package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ModelCall holds the schema definition for the ModelCall entity: the
// outcome of one resilient provider call within a stage.
type ModelCall struct {
	ent.Schema
}

// Fields of the ModelCall.
func (ModelCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("call_id").
			Unique().
			Immutable(),
		field.String("stage_id").
			Immutable(),

		field.String("model_id").
			Immutable(),
		field.Int("call_index").
			Comment("Position within the stage, following candidate order"),
		field.Enum("status").
			Values("success", "failed", "timed_out"),
		field.Text("text").
			Optional().
			Comment("Present iff status is success"),

		// Failure detail
		field.String("error_kind").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),

		// Usage accounting
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.Int("latency_ms").
			Default(0),
		field.Int("attempts").
			Default(0),
	}
}

// Edges of the ModelCall.
func (ModelCall) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stage", StageRecord.Type).
			Ref("model_calls").
			Field("stage_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ModelCall.
func (ModelCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage_id", "call_index").
			Unique(),
	}
}
