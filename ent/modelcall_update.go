// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/quorum-ai/quorum/ent/modelcall"
	"github.com/quorum-ai/quorum/ent/predicate"
)

// ModelCallUpdate is the builder for updating ModelCall entities.
type ModelCallUpdate struct {
	config
	hooks    []Hook
	mutation *ModelCallMutation
}

// Where appends a list predicates to the ModelCallUpdate builder.
func (_u *ModelCallUpdate) Where(ps ...predicate.ModelCall) *ModelCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCallIndex sets the "call_index" field.
func (_u *ModelCallUpdate) SetCallIndex(v int) *ModelCallUpdate {
	_u.mutation.ResetCallIndex()
	_u.mutation.SetCallIndex(v)
	return _u
}

// SetNillableCallIndex sets the "call_index" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableCallIndex(v *int) *ModelCallUpdate {
	if v != nil {
		_u.SetCallIndex(*v)
	}
	return _u
}

// AddCallIndex adds value to the "call_index" field.
func (_u *ModelCallUpdate) AddCallIndex(v int) *ModelCallUpdate {
	_u.mutation.AddCallIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModelCallUpdate) SetStatus(v modelcall.Status) *ModelCallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableStatus(v *modelcall.Status) *ModelCallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ModelCallUpdate) SetText(v string) *ModelCallUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableText(v *string) *ModelCallUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *ModelCallUpdate) ClearText() *ModelCallUpdate {
	_u.mutation.ClearText()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ModelCallUpdate) SetErrorKind(v string) *ModelCallUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableErrorKind(v *string) *ModelCallUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ModelCallUpdate) ClearErrorKind() *ModelCallUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ModelCallUpdate) SetErrorMessage(v string) *ModelCallUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableErrorMessage(v *string) *ModelCallUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ModelCallUpdate) ClearErrorMessage() *ModelCallUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ModelCallUpdate) SetInputTokens(v int) *ModelCallUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableInputTokens(v *int) *ModelCallUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ModelCallUpdate) AddInputTokens(v int) *ModelCallUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ModelCallUpdate) SetOutputTokens(v int) *ModelCallUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableOutputTokens(v *int) *ModelCallUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ModelCallUpdate) AddOutputTokens(v int) *ModelCallUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ModelCallUpdate) SetTotalTokens(v int) *ModelCallUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableTotalTokens(v *int) *ModelCallUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ModelCallUpdate) AddTotalTokens(v int) *ModelCallUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ModelCallUpdate) SetLatencyMs(v int) *ModelCallUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableLatencyMs(v *int) *ModelCallUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ModelCallUpdate) AddLatencyMs(v int) *ModelCallUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ModelCallUpdate) SetAttempts(v int) *ModelCallUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ModelCallUpdate) SetNillableAttempts(v *int) *ModelCallUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ModelCallUpdate) AddAttempts(v int) *ModelCallUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the ModelCallMutation object of the builder.
func (_u *ModelCallUpdate) Mutation() *ModelCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelCallUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := modelcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelCall.status": %w`, err)}
		}
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ModelCall.stage"`)
	}
	return nil
}

func (_u *ModelCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelcall.Table, modelcall.Columns, sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CallIndex(); ok {
		_spec.SetField(modelcall.FieldCallIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallIndex(); ok {
		_spec.AddField(modelcall.FieldCallIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(modelcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(modelcall.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(modelcall.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(modelcall.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(modelcall.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(modelcall.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(modelcall.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(modelcall.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(modelcall.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(modelcall.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(modelcall.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(modelcall.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(modelcall.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(modelcall.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(modelcall.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(modelcall.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(modelcall.FieldAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelCallUpdateOne is the builder for updating a single ModelCall entity.
type ModelCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelCallMutation
}

// SetCallIndex sets the "call_index" field.
func (_u *ModelCallUpdateOne) SetCallIndex(v int) *ModelCallUpdateOne {
	_u.mutation.ResetCallIndex()
	_u.mutation.SetCallIndex(v)
	return _u
}

// SetNillableCallIndex sets the "call_index" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableCallIndex(v *int) *ModelCallUpdateOne {
	if v != nil {
		_u.SetCallIndex(*v)
	}
	return _u
}

// AddCallIndex adds value to the "call_index" field.
func (_u *ModelCallUpdateOne) AddCallIndex(v int) *ModelCallUpdateOne {
	_u.mutation.AddCallIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ModelCallUpdateOne) SetStatus(v modelcall.Status) *ModelCallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableStatus(v *modelcall.Status) *ModelCallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ModelCallUpdateOne) SetText(v string) *ModelCallUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableText(v *string) *ModelCallUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *ModelCallUpdateOne) ClearText() *ModelCallUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ModelCallUpdateOne) SetErrorKind(v string) *ModelCallUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableErrorKind(v *string) *ModelCallUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ModelCallUpdateOne) ClearErrorKind() *ModelCallUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ModelCallUpdateOne) SetErrorMessage(v string) *ModelCallUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableErrorMessage(v *string) *ModelCallUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ModelCallUpdateOne) ClearErrorMessage() *ModelCallUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ModelCallUpdateOne) SetInputTokens(v int) *ModelCallUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableInputTokens(v *int) *ModelCallUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ModelCallUpdateOne) AddInputTokens(v int) *ModelCallUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ModelCallUpdateOne) SetOutputTokens(v int) *ModelCallUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableOutputTokens(v *int) *ModelCallUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ModelCallUpdateOne) AddOutputTokens(v int) *ModelCallUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ModelCallUpdateOne) SetTotalTokens(v int) *ModelCallUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableTotalTokens(v *int) *ModelCallUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ModelCallUpdateOne) AddTotalTokens(v int) *ModelCallUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *ModelCallUpdateOne) SetLatencyMs(v int) *ModelCallUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableLatencyMs(v *int) *ModelCallUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *ModelCallUpdateOne) AddLatencyMs(v int) *ModelCallUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ModelCallUpdateOne) SetAttempts(v int) *ModelCallUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ModelCallUpdateOne) SetNillableAttempts(v *int) *ModelCallUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ModelCallUpdateOne) AddAttempts(v int) *ModelCallUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the ModelCallMutation object of the builder.
func (_u *ModelCallUpdateOne) Mutation() *ModelCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelCallUpdate builder.
func (_u *ModelCallUpdateOne) Where(ps ...predicate.ModelCall) *ModelCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelCallUpdateOne) Select(field string, fields ...string) *ModelCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelCall entity.
func (_u *ModelCallUpdateOne) Save(ctx context.Context) (*ModelCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelCallUpdateOne) SaveX(ctx context.Context) *ModelCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ModelCallUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := modelcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelCall.status": %w`, err)}
		}
	}
	if _u.mutation.StageCleared() && len(_u.mutation.StageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ModelCall.stage"`)
	}
	return nil
}

func (_u *ModelCallUpdateOne) sqlSave(ctx context.Context) (_node *ModelCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(modelcall.Table, modelcall.Columns, sqlgraph.NewFieldSpec(modelcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modelcall.FieldID)
		for _, f := range fields {
			if !modelcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modelcall.FieldID {
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
	if value, ok := _u.mutation.CallIndex(); ok {
		_spec.SetField(modelcall.FieldCallIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCallIndex(); ok {
		_spec.AddField(modelcall.FieldCallIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(modelcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(modelcall.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(modelcall.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(modelcall.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(modelcall.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(modelcall.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(modelcall.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(modelcall.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(modelcall.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(modelcall.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(modelcall.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(modelcall.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(modelcall.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(modelcall.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(modelcall.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(modelcall.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(modelcall.FieldAttempts, field.TypeInt, value)
	}
	_node = &ModelCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modelcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
