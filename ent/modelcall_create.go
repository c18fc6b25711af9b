// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quorum-ai/quorum/ent/modelcall"
	"github.com/quorum-ai/quorum/ent/stagerecord"
)

// ModelCallCreate is the builder for creating a ModelCall entity.
type ModelCallCreate struct {
	config
	mutation *ModelCallMutation
	hooks    []Hook
}

// SetStageID sets the "stage_id" field.
func (_c *ModelCallCreate) SetStageID(v string) *ModelCallCreate {
	_c.mutation.SetStageID(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *ModelCallCreate) SetModelID(v string) *ModelCallCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetCallIndex sets the "call_index" field.
func (_c *ModelCallCreate) SetCallIndex(v int) *ModelCallCreate {
	_c.mutation.SetCallIndex(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ModelCallCreate) SetStatus(v modelcall.Status) *ModelCallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetText sets the "text" field.
func (_c *ModelCallCreate) SetText(v string) *ModelCallCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableText(v *string) *ModelCallCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ModelCallCreate) SetErrorKind(v string) *ModelCallCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableErrorKind(v *string) *ModelCallCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ModelCallCreate) SetErrorMessage(v string) *ModelCallCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableErrorMessage(v *string) *ModelCallCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *ModelCallCreate) SetInputTokens(v int) *ModelCallCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableInputTokens(v *int) *ModelCallCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *ModelCallCreate) SetOutputTokens(v int) *ModelCallCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableOutputTokens(v *int) *ModelCallCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *ModelCallCreate) SetTotalTokens(v int) *ModelCallCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableTotalTokens(v *int) *ModelCallCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ModelCallCreate) SetLatencyMs(v int) *ModelCallCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableLatencyMs(v *int) *ModelCallCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ModelCallCreate) SetAttempts(v int) *ModelCallCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ModelCallCreate) SetNillableAttempts(v *int) *ModelCallCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelCallCreate) SetID(v string) *ModelCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStage sets the "stage" edge to the StageRecord entity.
func (_c *ModelCallCreate) SetStage(v *StageRecord) *ModelCallCreate {
	return _c.SetStageID(v.ID)
}

// Mutation returns the ModelCallMutation object of the builder.
func (_c *ModelCallCreate) Mutation() *ModelCallMutation {
	return _c.mutation
}

// Save creates the ModelCall in the database.
func (_c *ModelCallCreate) Save(ctx context.Context) (*ModelCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelCallCreate) SaveX(ctx context.Context) *ModelCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelCallCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := modelcall.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := modelcall.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := modelcall.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := modelcall.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := modelcall.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelCallCreate) check() error {
	if _, ok := _c.mutation.StageID(); !ok {
		return &ValidationError{Name: "stage_id", err: errors.New(`ent: missing required field "ModelCall.stage_id"`)}
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "ModelCall.model_id"`)}
	}
	if _, ok := _c.mutation.CallIndex(); !ok {
		return &ValidationError{Name: "call_index", err: errors.New(`ent: missing required field "ModelCall.call_index"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ModelCall.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := modelcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelCall.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "ModelCall.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "ModelCall.output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "ModelCall.total_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "ModelCall.latency_ms"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ModelCall.attempts"`)}
	}
	if len(_c.mutation.StageIDs()) == 0 {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required edge "ModelCall.stage"`)}
	}
	return nil
}

func (_c *ModelCallCreate) sqlSave(ctx context.Context) (*ModelCall, error) {
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
			return nil, fmt.Errorf("unexpected ModelCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ModelCallCreate) createSpec() (*ModelCall, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modelcall.Table, sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(modelcall.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.CallIndex(); ok {
		_spec.SetField(modelcall.FieldCallIndex, field.TypeInt, value)
		_node.CallIndex = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(modelcall.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(modelcall.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(modelcall.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(modelcall.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(modelcall.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(modelcall.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(modelcall.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(modelcall.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(modelcall.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if nodes := _c.mutation.StageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   modelcall.StageTable,
			Columns: []string{modelcall.StageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stagerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ModelCallCreateBulk is the builder for creating many ModelCall entities in bulk.
type ModelCallCreateBulk struct {
	config
	err      error
	builders []*ModelCallCreate
}

// Save creates the ModelCall entities in the database.
func (_c *ModelCallCreateBulk) Save(ctx context.Context) ([]*ModelCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelCallMutation)
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
func (_c *ModelCallCreateBulk) SaveX(ctx context.Context) []*ModelCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
