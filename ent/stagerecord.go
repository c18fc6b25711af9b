// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/ent/stagerecord"
)

// StageRecord is the model entity for the StageRecord schema.
type StageRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// initial_response, peer_review_and_revision, or ultra_synthesis
	StageName string `json:"stage_name,omitempty"`
	// Position in the pipeline: 0, 1, 2
	StageIndex int `json:"stage_index,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StageRecordQuery when eager-loading is set.
	Edges        StageRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StageRecordEdges holds the relations/edges for other nodes in the graph.
type StageRecordEdges struct {
	// Run holds the value of the run edge.
	Run *PipelineRun `json:"run,omitempty"`
	// ModelCalls holds the value of the model_calls edge.
	ModelCalls []*ModelCall `json:"model_calls,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StageRecordEdges) RunOrErr() (*PipelineRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: pipelinerun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// ModelCallsOrErr returns the ModelCalls value or an error if the edge
// was not loaded in eager-loading.
func (e StageRecordEdges) ModelCallsOrErr() ([]*ModelCall, error) {
	if e.loadedTypes[1] {
		return e.ModelCalls, nil
	}
	return nil, &NotLoadedError{edge: "model_calls"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StageRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stagerecord.FieldSuccess:
			values[i] = new(sql.NullBool)
		case stagerecord.FieldStageIndex:
			values[i] = new(sql.NullInt64)
		case stagerecord.FieldID, stagerecord.FieldRunID, stagerecord.FieldStageName:
			values[i] = new(sql.NullString)
		case stagerecord.FieldStartedAt, stagerecord.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StageRecord fields.
func (_m *StageRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stagerecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stagerecord.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case stagerecord.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = value.String
			}
		case stagerecord.FieldStageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage_index", values[i])
			} else if value.Valid {
				_m.StageIndex = int(value.Int64)
			}
		case stagerecord.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case stagerecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case stagerecord.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StageRecord.
// This includes values selected through modifiers, order, etc.
func (_m *StageRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the StageRecord entity.
func (_m *StageRecord) QueryRun() *PipelineRunQuery {
	return NewStageRecordClient(_m.config).QueryRun(_m)
}

// QueryModelCalls queries the "model_calls" edge of the StageRecord entity.
func (_m *StageRecord) QueryModelCalls() *ModelCallQuery {
	return NewStageRecordClient(_m.config).QueryModelCalls(_m)
}

// Update returns a builder for updating this StageRecord.
// Note that you need to call StageRecord.Unwrap() before calling this method if this StageRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StageRecord) Update() *StageRecordUpdateOne {
	return NewStageRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StageRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StageRecord) Unwrap() *StageRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StageRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StageRecord) String() string {
	var builder strings.Builder
	builder.WriteString("StageRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("stage_name=")
	builder.WriteString(_m.StageName)
	builder.WriteString(", ")
	builder.WriteString("stage_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StageIndex))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StageRecords is a parsable slice of StageRecord.
type StageRecords []*StageRecord
