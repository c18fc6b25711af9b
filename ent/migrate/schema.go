// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// ModelCallsColumns holds the columns for the "model_calls" table.
	ModelCallsColumns = []*schema.Column{
		{Name: "call_id", Type: field.TypeString, Unique: true},
		{Name: "model_id", Type: field.TypeString},
		{Name: "call_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failed", "timed_out"}},
		{Name: "text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "stage_id", Type: field.TypeString},
	}
	// ModelCallsTable holds the schema information for the "model_calls" table.
	ModelCallsTable = &schema.Table{
		Name:       "model_calls",
		Columns:    ModelCallsColumns,
		PrimaryKey: []*schema.Column{ModelCallsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "model_calls_stage_records_model_calls",
				Columns:    []*schema.Column{ModelCallsColumns[12]},
				RefColumns: []*schema.Column{StageRecordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "modelcall_stage_id_call_index",
				Unique:  true,
				Columns: []*schema.Column{ModelCallsColumns[12], ModelCallsColumns[2]},
			},
		},
	}
	// PipelineRunsColumns holds the columns for the "pipeline_runs" table.
	PipelineRunsColumns = []*schema.Column{
		{Name: "correlation_id", Type: field.TypeString, Unique: true},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "candidate_models", Type: field.TypeJSON},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "stream_stages", Type: field.TypeJSON, Nullable: true},
		{Name: "peer_review_fatal", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "final_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "synthesis_model", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_models", Type: field.TypeJSON, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PipelineRunsTable holds the schema information for the "pipeline_runs" table.
	PipelineRunsTable = &schema.Table{
		Name:       "pipeline_runs",
		Columns:    PipelineRunsColumns,
		PrimaryKey: []*schema.Column{PipelineRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunsColumns[6], PipelineRunsColumns[14]},
			},
		},
	}
	// StageRecordsColumns holds the columns for the "stage_records" table.
	StageRecordsColumns = []*schema.Column{
		{Name: "stage_id", Type: field.TypeString, Unique: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "stage_index", Type: field.TypeInt},
		{Name: "success", Type: field.TypeBool},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// StageRecordsTable holds the schema information for the "stage_records" table.
	StageRecordsTable = &schema.Table{
		Name:       "stage_records",
		Columns:    StageRecordsColumns,
		PrimaryKey: []*schema.Column{StageRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_records_pipeline_runs_stages",
				Columns:    []*schema.Column{StageRecordsColumns[6]},
				RefColumns: []*schema.Column{PipelineRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stagerecord_run_id_stage_index",
				Unique:  true,
				Columns: []*schema.Column{StageRecordsColumns[6], StageRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		ModelCallsTable,
		PipelineRunsTable,
		StageRecordsTable,
	}
)

func init() {
	ModelCallsTable.ForeignKeys[0].RefTable = StageRecordsTable
	StageRecordsTable.ForeignKeys[0].RefTable = PipelineRunsTable
}
