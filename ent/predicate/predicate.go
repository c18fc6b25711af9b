// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// ModelCall is the predicate function for modelcall builders.
type ModelCall func(*sql.Selector)

// PipelineRun is the predicate function for pipelinerun builders.
type PipelineRun func(*sql.Selector)

// StageRecord is the predicate function for stagerecord builders.
type StageRecord func(*sql.Selector)
