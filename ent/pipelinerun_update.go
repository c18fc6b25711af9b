// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/ent/predicate"
	"github.com/quorum-ai/quorum/ent/stagerecord"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOptions sets the "options" field.
func (_u *PipelineRunUpdate) SetOptions(v map[string]interface{}) *PipelineRunUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *PipelineRunUpdate) ClearOptions() *PipelineRunUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetStreamStages sets the "stream_stages" field.
func (_u *PipelineRunUpdate) SetStreamStages(v []string) *PipelineRunUpdate {
	_u.mutation.SetStreamStages(v)
	return _u
}

// AppendStreamStages appends value to the "stream_stages" field.
func (_u *PipelineRunUpdate) AppendStreamStages(v []string) *PipelineRunUpdate {
	_u.mutation.AppendStreamStages(v)
	return _u
}

// ClearStreamStages clears the value of the "stream_stages" field.
func (_u *PipelineRunUpdate) ClearStreamStages() *PipelineRunUpdate {
	_u.mutation.ClearStreamStages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalText sets the "final_text" field.
func (_u *PipelineRunUpdate) SetFinalText(v string) *PipelineRunUpdate {
	_u.mutation.SetFinalText(v)
	return _u
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableFinalText(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetFinalText(*v)
	}
	return _u
}

// ClearFinalText clears the value of the "final_text" field.
func (_u *PipelineRunUpdate) ClearFinalText() *PipelineRunUpdate {
	_u.mutation.ClearFinalText()
	return _u
}

// SetSynthesisModel sets the "synthesis_model" field.
func (_u *PipelineRunUpdate) SetSynthesisModel(v string) *PipelineRunUpdate {
	_u.mutation.SetSynthesisModel(v)
	return _u
}

// SetNillableSynthesisModel sets the "synthesis_model" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableSynthesisModel(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetSynthesisModel(*v)
	}
	return _u
}

// ClearSynthesisModel clears the value of the "synthesis_model" field.
func (_u *PipelineRunUpdate) ClearSynthesisModel() *PipelineRunUpdate {
	_u.mutation.ClearSynthesisModel()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *PipelineRunUpdate) SetErrorKind(v string) *PipelineRunUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableErrorKind(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *PipelineRunUpdate) ClearErrorKind() *PipelineRunUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdate) SetErrorMessage(v string) *PipelineRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableErrorMessage(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdate) ClearErrorMessage() *PipelineRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorModels sets the "error_models" field.
func (_u *PipelineRunUpdate) SetErrorModels(v []string) *PipelineRunUpdate {
	_u.mutation.SetErrorModels(v)
	return _u
}

// AppendErrorModels appends value to the "error_models" field.
func (_u *PipelineRunUpdate) AppendErrorModels(v []string) *PipelineRunUpdate {
	_u.mutation.AppendErrorModels(v)
	return _u
}

// ClearErrorModels clears the value of the "error_models" field.
func (_u *PipelineRunUpdate) ClearErrorModels() *PipelineRunUpdate {
	_u.mutation.ClearErrorModels()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *PipelineRunUpdate) SetWorkerID(v string) *PipelineRunUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableWorkerID(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *PipelineRunUpdate) ClearWorkerID() *PipelineRunUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *PipelineRunUpdate) SetLastHeartbeat(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableLastHeartbeat(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *PipelineRunUpdate) ClearLastHeartbeat() *PipelineRunUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdate) SetStartedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStartedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdate) ClearStartedAt() *PipelineRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdate) SetCompletedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdate) ClearCompletedAt() *PipelineRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStageIDs adds the "stages" edge to the StageRecord entity by IDs.
func (_u *PipelineRunUpdate) AddStageIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the StageRecord entity.
func (_u *PipelineRunUpdate) AddStages(v ...*StageRecord) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the StageRecord entity.
func (_u *PipelineRunUpdate) ClearStages() *PipelineRunUpdate {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to StageRecord entities by IDs.
func (_u *PipelineRunUpdate) RemoveStageIDs(ids ...string) *PipelineRunUpdate {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to StageRecord entities.
func (_u *PipelineRunUpdate) RemoveStages(v ...*StageRecord) *PipelineRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(pipelinerun.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(pipelinerun.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.StreamStages(); ok {
		_spec.SetField(pipelinerun.FieldStreamStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStreamStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldStreamStages, value)
		})
	}
	if _u.mutation.StreamStagesCleared() {
		_spec.ClearField(pipelinerun.FieldStreamStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalText(); ok {
		_spec.SetField(pipelinerun.FieldFinalText, field.TypeString, value)
	}
	if _u.mutation.FinalTextCleared() {
		_spec.ClearField(pipelinerun.FieldFinalText, field.TypeString)
	}
	if value, ok := _u.mutation.SynthesisModel(); ok {
		_spec.SetField(pipelinerun.FieldSynthesisModel, field.TypeString, value)
	}
	if _u.mutation.SynthesisModelCleared() {
		_spec.ClearField(pipelinerun.FieldSynthesisModel, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(pipelinerun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(pipelinerun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorModels(); ok {
		_spec.SetField(pipelinerun.FieldErrorModels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorModels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldErrorModels, value)
		})
	}
	if _u.mutation.ErrorModelsCleared() {
		_spec.ClearField(pipelinerun.FieldErrorModels, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(pipelinerun.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(pipelinerun.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(pipelinerun.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(pipelinerun.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StagesTable,
			Columns: []string{pipelinerun.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StagesTable,
			Columns: []string{pipelinerun.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StagesTable,
			Columns: []string{pipelinerun.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetOptions sets the "options" field.
func (_u *PipelineRunUpdateOne) SetOptions(v map[string]interface{}) *PipelineRunUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *PipelineRunUpdateOne) ClearOptions() *PipelineRunUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetStreamStages sets the "stream_stages" field.
func (_u *PipelineRunUpdateOne) SetStreamStages(v []string) *PipelineRunUpdateOne {
	_u.mutation.SetStreamStages(v)
	return _u
}

// AppendStreamStages appends value to the "stream_stages" field.
func (_u *PipelineRunUpdateOne) AppendStreamStages(v []string) *PipelineRunUpdateOne {
	_u.mutation.AppendStreamStages(v)
	return _u
}

// ClearStreamStages clears the value of the "stream_stages" field.
func (_u *PipelineRunUpdateOne) ClearStreamStages() *PipelineRunUpdateOne {
	_u.mutation.ClearStreamStages()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalText sets the "final_text" field.
func (_u *PipelineRunUpdateOne) SetFinalText(v string) *PipelineRunUpdateOne {
	_u.mutation.SetFinalText(v)
	return _u
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableFinalText(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetFinalText(*v)
	}
	return _u
}

// ClearFinalText clears the value of the "final_text" field.
func (_u *PipelineRunUpdateOne) ClearFinalText() *PipelineRunUpdateOne {
	_u.mutation.ClearFinalText()
	return _u
}

// SetSynthesisModel sets the "synthesis_model" field.
func (_u *PipelineRunUpdateOne) SetSynthesisModel(v string) *PipelineRunUpdateOne {
	_u.mutation.SetSynthesisModel(v)
	return _u
}

// SetNillableSynthesisModel sets the "synthesis_model" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableSynthesisModel(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetSynthesisModel(*v)
	}
	return _u
}

// ClearSynthesisModel clears the value of the "synthesis_model" field.
func (_u *PipelineRunUpdateOne) ClearSynthesisModel() *PipelineRunUpdateOne {
	_u.mutation.ClearSynthesisModel()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *PipelineRunUpdateOne) SetErrorKind(v string) *PipelineRunUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableErrorKind(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *PipelineRunUpdateOne) ClearErrorKind() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunUpdateOne) SetErrorMessage(v string) *PipelineRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableErrorMessage(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineRunUpdateOne) ClearErrorMessage() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorModels sets the "error_models" field.
func (_u *PipelineRunUpdateOne) SetErrorModels(v []string) *PipelineRunUpdateOne {
	_u.mutation.SetErrorModels(v)
	return _u
}

// AppendErrorModels appends value to the "error_models" field.
func (_u *PipelineRunUpdateOne) AppendErrorModels(v []string) *PipelineRunUpdateOne {
	_u.mutation.AppendErrorModels(v)
	return _u
}

// ClearErrorModels clears the value of the "error_models" field.
func (_u *PipelineRunUpdateOne) ClearErrorModels() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorModels()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *PipelineRunUpdateOne) SetWorkerID(v string) *PipelineRunUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableWorkerID(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *PipelineRunUpdateOne) ClearWorkerID() *PipelineRunUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *PipelineRunUpdateOne) SetLastHeartbeat(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableLastHeartbeat(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *PipelineRunUpdateOne) ClearLastHeartbeat() *PipelineRunUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdateOne) SetStartedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PipelineRunUpdateOne) ClearStartedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PipelineRunUpdateOne) SetCompletedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableCompletedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PipelineRunUpdateOne) ClearCompletedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStageIDs adds the "stages" edge to the StageRecord entity by IDs.
func (_u *PipelineRunUpdateOne) AddStageIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.AddStageIDs(ids...)
	return _u
}

// AddStages adds the "stages" edges to the StageRecord entity.
func (_u *PipelineRunUpdateOne) AddStages(v ...*StageRecord) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStageIDs(ids...)
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// ClearStages clears all "stages" edges to the StageRecord entity.
func (_u *PipelineRunUpdateOne) ClearStages() *PipelineRunUpdateOne {
	_u.mutation.ClearStages()
	return _u
}

// RemoveStageIDs removes the "stages" edge to StageRecord entities by IDs.
func (_u *PipelineRunUpdateOne) RemoveStageIDs(ids ...string) *PipelineRunUpdateOne {
	_u.mutation.RemoveStageIDs(ids...)
	return _u
}

// RemoveStages removes "stages" edges to StageRecord entities.
func (_u *PipelineRunUpdateOne) RemoveStages(v ...*StageRecord) *PipelineRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStageIDs(ids...)
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(pipelinerun.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(pipelinerun.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.StreamStages(); ok {
		_spec.SetField(pipelinerun.FieldStreamStages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStreamStages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldStreamStages, value)
		})
	}
	if _u.mutation.StreamStagesCleared() {
		_spec.ClearField(pipelinerun.FieldStreamStages, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalText(); ok {
		_spec.SetField(pipelinerun.FieldFinalText, field.TypeString, value)
	}
	if _u.mutation.FinalTextCleared() {
		_spec.ClearField(pipelinerun.FieldFinalText, field.TypeString)
	}
	if value, ok := _u.mutation.SynthesisModel(); ok {
		_spec.SetField(pipelinerun.FieldSynthesisModel, field.TypeString, value)
	}
	if _u.mutation.SynthesisModelCleared() {
		_spec.ClearField(pipelinerun.FieldSynthesisModel, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(pipelinerun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(pipelinerun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinerun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorModels(); ok {
		_spec.SetField(pipelinerun.FieldErrorModels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorModels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinerun.FieldErrorModels, value)
		})
	}
	if _u.mutation.ErrorModelsCleared() {
		_spec.ClearField(pipelinerun.FieldErrorModels, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(pipelinerun.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(pipelinerun.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(pipelinerun.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(pipelinerun.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(pipelinerun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(pipelinerun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(pipelinerun.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StagesTable,
			Columns: []string{pipelinerun.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStagesIDs(); len(nodes) > 0 && !_u.mutation.StagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StagesTable,
			Columns: []string{pipelinerun.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinerun.StagesTable,
			Columns: []string{pipelinerun.StagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
