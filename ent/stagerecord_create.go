// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quorum-ai/quorum/ent/modelcall"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/ent/stagerecord"
)

// StageRecordCreate is the builder for creating a StageRecord entity.
type StageRecordCreate struct {
	config
	mutation *StageRecordMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *StageRecordCreate) SetRunID(v string) *StageRecordCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *StageRecordCreate) SetStageName(v string) *StageRecordCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetStageIndex sets the "stage_index" field.
func (_c *StageRecordCreate) SetStageIndex(v int) *StageRecordCreate {
	_c.mutation.SetStageIndex(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *StageRecordCreate) SetSuccess(v bool) *StageRecordCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StageRecordCreate) SetStartedAt(v time.Time) *StageRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StageRecordCreate) SetCompletedAt(v time.Time) *StageRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StageRecordCreate) SetID(v string) *StageRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the PipelineRun entity.
func (_c *StageRecordCreate) SetRun(v *PipelineRun) *StageRecordCreate {
	return _c.SetRunID(v.ID)
}

// AddModelCallIDs adds the "model_calls" edge to the ModelCall entity by IDs.
func (_c *StageRecordCreate) AddModelCallIDs(ids ...string) *StageRecordCreate {
	_c.mutation.AddModelCallIDs(ids...)
	return _c
}

// AddModelCalls adds the "model_calls" edges to the ModelCall entity.
func (_c *StageRecordCreate) AddModelCalls(v ...*ModelCall) *StageRecordCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddModelCallIDs(ids...)
}

// Mutation returns the StageRecordMutation object of the builder.
func (_c *StageRecordCreate) Mutation() *StageRecordMutation {
	return _c.mutation
}

// Save creates the StageRecord in the database.
func (_c *StageRecordCreate) Save(ctx context.Context) (*StageRecord, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageRecordCreate) SaveX(ctx context.Context) *StageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageRecordCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "StageRecord.run_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "StageRecord.stage_name"`)}
	}
	if _, ok := _c.mutation.StageIndex(); !ok {
		return &ValidationError{Name: "stage_index", err: errors.New(`ent: missing required field "StageRecord.stage_index"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "StageRecord.success"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "StageRecord.started_at"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "StageRecord.completed_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "StageRecord.run"`)}
	}
	return nil
}

func (_c *StageRecordCreate) sqlSave(ctx context.Context) (*StageRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StageRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageRecordCreate) createSpec() (*StageRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StageRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagerecord.Table, sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(stagerecord.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.StageIndex(); ok {
		_spec.SetField(stagerecord.FieldStageIndex, field.TypeInt, value)
		_node.StageIndex = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(stagerecord.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stagerecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stagerecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stagerecord.RunTable,
			Columns: []string{stagerecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ModelCallsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StageRecordCreateBulk is the builder for creating many StageRecord entities in bulk.
type StageRecordCreateBulk struct {
	config
	err      error
	builders []*StageRecordCreate
}

// Save creates the StageRecord entities in the database.
func (_c *StageRecordCreateBulk) Save(ctx context.Context) ([]*StageRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StageRecordCreateBulk) SaveX(ctx context.Context) []*StageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
