// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quorum-ai/quorum/ent/modelcall"
	"github.com/quorum-ai/quorum/ent/predicate"
	"github.com/quorum-ai/quorum/ent/stagerecord"
)

// StageRecordUpdate is the builder for updating StageRecord entities.
type StageRecordUpdate struct {
	config
	hooks    []Hook
	mutation *StageRecordMutation
}

// Where appends a list predicates to the StageRecordUpdate builder.
func (_u *StageRecordUpdate) Where(ps ...predicate.StageRecord) *StageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageRecordUpdate) SetStageName(v string) *StageRecordUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageRecordUpdate) SetNillableStageName(v *string) *StageRecordUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *StageRecordUpdate) SetStageIndex(v int) *StageRecordUpdate {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StageRecordUpdate) SetNillableStageIndex(v *int) *StageRecordUpdate {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StageRecordUpdate) AddStageIndex(v int) *StageRecordUpdate {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *StageRecordUpdate) SetSuccess(v bool) *StageRecordUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *StageRecordUpdate) SetNillableSuccess(v *bool) *StageRecordUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageRecordUpdate) SetStartedAt(v time.Time) *StageRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageRecordUpdate) SetNillableStartedAt(v *time.Time) *StageRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageRecordUpdate) SetCompletedAt(v time.Time) *StageRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageRecordUpdate) SetNillableCompletedAt(v *time.Time) *StageRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddModelCallIDs adds the "model_calls" edge to the ModelCall entity by IDs.
func (_u *StageRecordUpdate) AddModelCallIDs(ids ...string) *StageRecordUpdate {
	_u.mutation.AddModelCallIDs(ids...)
	return _u
}

// AddModelCalls adds the "model_calls" edges to the ModelCall entity.
func (_u *StageRecordUpdate) AddModelCalls(v ...*ModelCall) *StageRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModelCallIDs(ids...)
}

// Mutation returns the StageRecordMutation object of the builder.
func (_u *StageRecordUpdate) Mutation() *StageRecordMutation {
	return _u.mutation
}

// ClearModelCalls clears all "model_calls" edges to the ModelCall entity.
func (_u *StageRecordUpdate) ClearModelCalls() *StageRecordUpdate {
	_u.mutation.ClearModelCalls()
	return _u
}

// RemoveModelCallIDs removes the "model_calls" edge to ModelCall entities by IDs.
func (_u *StageRecordUpdate) RemoveModelCallIDs(ids ...string) *StageRecordUpdate {
	_u.mutation.RemoveModelCallIDs(ids...)
	return _u
}

// RemoveModelCalls removes "model_calls" edges to ModelCall entities.
func (_u *StageRecordUpdate) RemoveModelCalls(v ...*ModelCall) *StageRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModelCallIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageRecordUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageRecord.run"`)
	}
	return nil
}

func (_u *StageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagerecord.Table, stagerecord.Columns, sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stagerecord.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(stagerecord.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(stagerecord.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(stagerecord.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stagerecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stagerecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ModelCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stagerecord.ModelCallsTable,
			Columns: []string{stagerecord.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModelCallsIDs(); len(nodes) > 0 && !_u.mutation.ModelCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stagerecord.ModelCallsTable,
			Columns: []string{stagerecord.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModelCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stagerecord.ModelCallsTable,
			Columns: []string{stagerecord.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageRecordUpdateOne is the builder for updating a single StageRecord entity.
type StageRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageRecordMutation
}

// SetStageName sets the "stage_name" field.
func (_u *StageRecordUpdateOne) SetStageName(v string) *StageRecordUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageRecordUpdateOne) SetNillableStageName(v *string) *StageRecordUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetStageIndex sets the "stage_index" field.
func (_u *StageRecordUpdateOne) SetStageIndex(v int) *StageRecordUpdateOne {
	_u.mutation.ResetStageIndex()
	_u.mutation.SetStageIndex(v)
	return _u
}

// SetNillableStageIndex sets the "stage_index" field if the given value is not nil.
func (_u *StageRecordUpdateOne) SetNillableStageIndex(v *int) *StageRecordUpdateOne {
	if v != nil {
		_u.SetStageIndex(*v)
	}
	return _u
}

// AddStageIndex adds value to the "stage_index" field.
func (_u *StageRecordUpdateOne) AddStageIndex(v int) *StageRecordUpdateOne {
	_u.mutation.AddStageIndex(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *StageRecordUpdateOne) SetSuccess(v bool) *StageRecordUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *StageRecordUpdateOne) SetNillableSuccess(v *bool) *StageRecordUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StageRecordUpdateOne) SetStartedAt(v time.Time) *StageRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StageRecordUpdateOne) SetNillableStartedAt(v *time.Time) *StageRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageRecordUpdateOne) SetCompletedAt(v time.Time) *StageRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *StageRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddModelCallIDs adds the "model_calls" edge to the ModelCall entity by IDs.
func (_u *StageRecordUpdateOne) AddModelCallIDs(ids ...string) *StageRecordUpdateOne {
	_u.mutation.AddModelCallIDs(ids...)
	return _u
}

// AddModelCalls adds the "model_calls" edges to the ModelCall entity.
func (_u *StageRecordUpdateOne) AddModelCalls(v ...*ModelCall) *StageRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddModelCallIDs(ids...)
}

// Mutation returns the StageRecordMutation object of the builder.
func (_u *StageRecordUpdateOne) Mutation() *StageRecordMutation {
	return _u.mutation
}

// ClearModelCalls clears all "model_calls" edges to the ModelCall entity.
func (_u *StageRecordUpdateOne) ClearModelCalls() *StageRecordUpdateOne {
	_u.mutation.ClearModelCalls()
	return _u
}

// RemoveModelCallIDs removes the "model_calls" edge to ModelCall entities by IDs.
func (_u *StageRecordUpdateOne) RemoveModelCallIDs(ids ...string) *StageRecordUpdateOne {
	_u.mutation.RemoveModelCallIDs(ids...)
	return _u
}

// RemoveModelCalls removes "model_calls" edges to ModelCall entities.
func (_u *StageRecordUpdateOne) RemoveModelCalls(v ...*ModelCall) *StageRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveModelCallIDs(ids...)
}

// Where appends a list predicates to the StageRecordUpdate builder.
func (_u *StageRecordUpdateOne) Where(ps ...predicate.StageRecord) *StageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageRecordUpdateOne) Select(field string, fields ...string) *StageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageRecord entity.
func (_u *StageRecordUpdateOne) Save(ctx context.Context) (*StageRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageRecordUpdateOne) SaveX(ctx context.Context) *StageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageRecordUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StageRecord.run"`)
	}
	return nil
}

func (_u *StageRecordUpdateOne) sqlSave(ctx context.Context) (_node *StageRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagerecord.Table, stagerecord.Columns, sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagerecord.FieldID)
		for _, f := range fields {
			if !stagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagerecord.FieldID {
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
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stagerecord.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StageIndex(); ok {
		_spec.SetField(stagerecord.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageIndex(); ok {
		_spec.AddField(stagerecord.FieldStageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(stagerecord.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stagerecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stagerecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.ModelCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stagerecord.ModelCallsTable,
			Columns: []string{stagerecord.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedModelCallsIDs(); len(nodes) > 0 && !_u.mutation.ModelCallsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stagerecord.ModelCallsTable,
			Columns: []string{stagerecord.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ModelCallsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stagerecord.ModelCallsTable,
			Columns: []string{stagerecord.ModelCallsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
