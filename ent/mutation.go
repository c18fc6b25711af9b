// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quorum-ai/quorum/ent/event"
	"github.com/quorum-ai/quorum/ent/modelcall"
	"github.com/quorum-ai/quorum/ent/pipelinerun"
	"github.com/quorum-ai/quorum/ent/predicate"
	"github.com/quorum-ai/quorum/ent/stagerecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent       = "Event"
	TypeModelCall   = "ModelCall"
	TypePipelineRun = "PipelineRun"
	TypeStageRecord = "StageRecord"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int64
	correlation_id *string
	channel        *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCorrelationID sets the "correlation_id" field.
func (m *EventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *EventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *EventMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.correlation_id != nil {
		fields = append(fields, event.FieldCorrelationID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldCorrelationID:
		return m.CorrelationID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// ModelCallMutation represents an operation that mutates the ModelCall nodes in the graph.
type ModelCallMutation struct {
	config
	op               Op
	typ              string
	id               *string
	model_id         *string
	call_index       *int
	addcall_index    *int
	status           *modelcall.Status
	text             *string
	error_kind       *string
	error_message    *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	total_tokens     *int
	addtotal_tokens  *int
	latency_ms       *int
	addlatency_ms    *int
	attempts         *int
	addattempts      *int
	clearedFields    map[string]struct{}
	stage            *string
	clearedstage     bool
	done             bool
	oldValue         func(context.Context) (*ModelCall, error)
	predicates       []predicate.ModelCall
}

var _ ent.Mutation = (*ModelCallMutation)(nil)

// modelcallOption allows management of the mutation configuration using functional options.
type modelcallOption func(*ModelCallMutation)

// newModelCallMutation creates new mutation for the ModelCall entity.
func newModelCallMutation(c config, op Op, opts ...modelcallOption) *ModelCallMutation {
	m := &ModelCallMutation{
		config:        c,
		op:            op,
		typ:           TypeModelCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelCallID sets the ID field of the mutation.
func withModelCallID(id string) modelcallOption {
	return func(m *ModelCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelCall
		)
		m.oldValue = func(ctx context.Context) (*ModelCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelCall sets the old ModelCall of the mutation.
func withModelCall(node *ModelCall) modelcallOption {
	return func(m *ModelCallMutation) {
		m.oldValue = func(context.Context) (*ModelCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelCall entities.
func (m *ModelCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStageID sets the "stage_id" field.
func (m *ModelCallMutation) SetStageID(s string) {
	m.stage = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *ModelCallMutation) StageID() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *ModelCallMutation) ResetStageID() {
	m.stage = nil
}

// SetModelID sets the "model_id" field.
func (m *ModelCallMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *ModelCallMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *ModelCallMutation) ResetModelID() {
	m.model_id = nil
}

// SetCallIndex sets the "call_index" field.
func (m *ModelCallMutation) SetCallIndex(i int) {
	m.call_index = &i
	m.addcall_index = nil
}

// CallIndex returns the value of the "call_index" field in the mutation.
func (m *ModelCallMutation) CallIndex() (r int, exists bool) {
	v := m.call_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCallIndex returns the old "call_index" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldCallIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallIndex: %w", err)
	}
	return oldValue.CallIndex, nil
}

// AddCallIndex adds i to the "call_index" field.
func (m *ModelCallMutation) AddCallIndex(i int) {
	if m.addcall_index != nil {
		*m.addcall_index += i
	} else {
		m.addcall_index = &i
	}
}

// AddedCallIndex returns the value that was added to the "call_index" field in this mutation.
func (m *ModelCallMutation) AddedCallIndex() (r int, exists bool) {
	v := m.addcall_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCallIndex resets all changes to the "call_index" field.
func (m *ModelCallMutation) ResetCallIndex() {
	m.call_index = nil
	m.addcall_index = nil
}

// SetStatus sets the "status" field.
func (m *ModelCallMutation) SetStatus(value modelcall.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *ModelCallMutation) Status() (r modelcall.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldStatus(ctx context.Context) (v modelcall.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ModelCallMutation) ResetStatus() {
	m.status = nil
}

// SetText sets the "text" field.
func (m *ModelCallMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ModelCallMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ClearText clears the value of the "text" field.
func (m *ModelCallMutation) ClearText() {
	m.text = nil
	m.clearedFields[modelcall.FieldText] = struct{}{}
}

// TextCleared returns if the "text" field was cleared in this mutation.
func (m *ModelCallMutation) TextCleared() bool {
	_, ok := m.clearedFields[modelcall.FieldText]
	return ok
}

// ResetText resets all changes to the "text" field.
func (m *ModelCallMutation) ResetText() {
	m.text = nil
	delete(m.clearedFields, modelcall.FieldText)
}

// SetErrorKind sets the "error_kind" field.
func (m *ModelCallMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ModelCallMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *ModelCallMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[modelcall.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ModelCallMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[modelcall.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ModelCallMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, modelcall.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *ModelCallMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ModelCallMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ModelCallMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[modelcall.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ModelCallMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[modelcall.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ModelCallMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, modelcall.FieldErrorMessage)
}

// SetInputTokens sets the "input_tokens" field.
func (m *ModelCallMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *ModelCallMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *ModelCallMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *ModelCallMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *ModelCallMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *ModelCallMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *ModelCallMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *ModelCallMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *ModelCallMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *ModelCallMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *ModelCallMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *ModelCallMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *ModelCallMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *ModelCallMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *ModelCallMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ModelCallMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ModelCallMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ModelCallMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ModelCallMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ModelCallMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetAttempts sets the "attempts" field.
func (m *ModelCallMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ModelCallMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ModelCall entity.
// If the ModelCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelCallMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ModelCallMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ModelCallMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ModelCallMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// ClearStage clears the "stage" edge to the StageRecord entity.
func (m *ModelCallMutation) ClearStage() {
	m.clearedstage = true
	m.clearedFields[modelcall.FieldStageID] = struct{}{}
}

// StageCleared reports if the "stage" edge to the StageRecord entity was cleared.
func (m *ModelCallMutation) StageCleared() bool {
	return m.clearedstage
}

// StageIDs returns the "stage" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageID instead. It exists only for internal usage by the builders.
func (m *ModelCallMutation) StageIDs() (ids []string) {
	if id := m.stage; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStage resets all changes to the "stage" edge.
func (m *ModelCallMutation) ResetStage() {
	m.stage = nil
	m.clearedstage = false
}

// Where appends a list predicates to the ModelCallMutation builder.
func (m *ModelCallMutation) Where(ps ...predicate.ModelCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelCall).
func (m *ModelCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelCallMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.stage != nil {
		fields = append(fields, modelcall.FieldStageID)
	}
	if m.model_id != nil {
		fields = append(fields, modelcall.FieldModelID)
	}
	if m.call_index != nil {
		fields = append(fields, modelcall.FieldCallIndex)
	}
	if m.status != nil {
		fields = append(fields, modelcall.FieldStatus)
	}
	if m.text != nil {
		fields = append(fields, modelcall.FieldText)
	}
	if m.error_kind != nil {
		fields = append(fields, modelcall.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, modelcall.FieldErrorMessage)
	}
	if m.input_tokens != nil {
		fields = append(fields, modelcall.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, modelcall.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, modelcall.FieldTotalTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, modelcall.FieldLatencyMs)
	}
	if m.attempts != nil {
		fields = append(fields, modelcall.FieldAttempts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modelcall.FieldStageID:
		return m.StageID()
	case modelcall.FieldModelID:
		return m.ModelID()
	case modelcall.FieldCallIndex:
		return m.CallIndex()
	case modelcall.FieldStatus:
		return m.Status()
	case modelcall.FieldText:
		return m.Text()
	case modelcall.FieldErrorKind:
		return m.ErrorKind()
	case modelcall.FieldErrorMessage:
		return m.ErrorMessage()
	case modelcall.FieldInputTokens:
		return m.InputTokens()
	case modelcall.FieldOutputTokens:
		return m.OutputTokens()
	case modelcall.FieldTotalTokens:
		return m.TotalTokens()
	case modelcall.FieldLatencyMs:
		return m.LatencyMs()
	case modelcall.FieldAttempts:
		return m.Attempts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modelcall.FieldStageID:
		return m.OldStageID(ctx)
	case modelcall.FieldModelID:
		return m.OldModelID(ctx)
	case modelcall.FieldCallIndex:
		return m.OldCallIndex(ctx)
	case modelcall.FieldStatus:
		return m.OldStatus(ctx)
	case modelcall.FieldText:
		return m.OldText(ctx)
	case modelcall.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case modelcall.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case modelcall.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case modelcall.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case modelcall.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case modelcall.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case modelcall.FieldAttempts:
		return m.OldAttempts(ctx)
	}
	return nil, fmt.Errorf("unknown ModelCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modelcall.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case modelcall.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case modelcall.FieldCallIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallIndex(v)
		return nil
	case modelcall.FieldStatus:
		v, ok := value.(modelcall.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case modelcall.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case modelcall.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case modelcall.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case modelcall.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case modelcall.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case modelcall.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case modelcall.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case modelcall.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown ModelCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelCallMutation) AddedFields() []string {
	var fields []string
	if m.addcall_index != nil {
		fields = append(fields, modelcall.FieldCallIndex)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, modelcall.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, modelcall.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, modelcall.FieldTotalTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, modelcall.FieldLatencyMs)
	}
	if m.addattempts != nil {
		fields = append(fields, modelcall.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modelcall.FieldCallIndex:
		return m.AddedCallIndex()
	case modelcall.FieldInputTokens:
		return m.AddedInputTokens()
	case modelcall.FieldOutputTokens:
		return m.AddedOutputTokens()
	case modelcall.FieldTotalTokens:
		return m.AddedTotalTokens()
	case modelcall.FieldLatencyMs:
		return m.AddedLatencyMs()
	case modelcall.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modelcall.FieldCallIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCallIndex(v)
		return nil
	case modelcall.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case modelcall.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case modelcall.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case modelcall.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case modelcall.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown ModelCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modelcall.FieldText) {
		fields = append(fields, modelcall.FieldText)
	}
	if m.FieldCleared(modelcall.FieldErrorKind) {
		fields = append(fields, modelcall.FieldErrorKind)
	}
	if m.FieldCleared(modelcall.FieldErrorMessage) {
		fields = append(fields, modelcall.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelCallMutation) ClearField(name string) error {
	switch name {
	case modelcall.FieldText:
		m.ClearText()
		return nil
	case modelcall.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case modelcall.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ModelCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelCallMutation) ResetField(name string) error {
	switch name {
	case modelcall.FieldStageID:
		m.ResetStageID()
		return nil
	case modelcall.FieldModelID:
		m.ResetModelID()
		return nil
	case modelcall.FieldCallIndex:
		m.ResetCallIndex()
		return nil
	case modelcall.FieldStatus:
		m.ResetStatus()
		return nil
	case modelcall.FieldText:
		m.ResetText()
		return nil
	case modelcall.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case modelcall.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case modelcall.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case modelcall.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case modelcall.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case modelcall.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case modelcall.FieldAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown ModelCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stage != nil {
		edges = append(edges, modelcall.EdgeStage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelCallMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case modelcall.EdgeStage:
		if id := m.stage; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstage {
		edges = append(edges, modelcall.EdgeStage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelCallMutation) EdgeCleared(name string) bool {
	switch name {
	case modelcall.EdgeStage:
		return m.clearedstage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelCallMutation) ClearEdge(name string) error {
	switch name {
	case modelcall.EdgeStage:
		m.ClearStage()
		return nil
	}
	return fmt.Errorf("unknown ModelCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelCallMutation) ResetEdge(name string) error {
	switch name {
	case modelcall.EdgeStage:
		m.ResetStage()
		return nil
	}
	return fmt.Errorf("unknown ModelCall edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	prompt                 *string
	candidate_models       *[]string
	appendcandidate_models []string
	options                *map[string]interface{}
	stream_stages          *[]string
	appendstream_stages    []string
	peer_review_fatal      *bool
	status                 *pipelinerun.Status
	final_text             *string
	synthesis_model        *string
	error_kind             *string
	error_message          *string
	error_models           *[]string
	appenderror_models     []string
	worker_id              *string
	last_heartbeat         *time.Time
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	stages                 map[string]struct{}
	removedstages          map[string]struct{}
	clearedstages          bool
	done                   bool
	oldValue               func(context.Context) (*PipelineRun, error)
	predicates             []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPrompt sets the "prompt" field.
func (m *PipelineRunMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *PipelineRunMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *PipelineRunMutation) ResetPrompt() {
	m.prompt = nil
}

// SetCandidateModels sets the "candidate_models" field.
func (m *PipelineRunMutation) SetCandidateModels(s []string) {
	m.candidate_models = &s
	m.appendcandidate_models = nil
}

// CandidateModels returns the value of the "candidate_models" field in the mutation.
func (m *PipelineRunMutation) CandidateModels() (r []string, exists bool) {
	v := m.candidate_models
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateModels returns the old "candidate_models" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCandidateModels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateModels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateModels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateModels: %w", err)
	}
	return oldValue.CandidateModels, nil
}

// AppendCandidateModels adds s to the "candidate_models" field.
func (m *PipelineRunMutation) AppendCandidateModels(s []string) {
	m.appendcandidate_models = append(m.appendcandidate_models, s...)
}

// AppendedCandidateModels returns the list of values that were appended to the "candidate_models" field in this mutation.
func (m *PipelineRunMutation) AppendedCandidateModels() ([]string, bool) {
	if len(m.appendcandidate_models) == 0 {
		return nil, false
	}
	return m.appendcandidate_models, true
}

// ResetCandidateModels resets all changes to the "candidate_models" field.
func (m *PipelineRunMutation) ResetCandidateModels() {
	m.candidate_models = nil
	m.appendcandidate_models = nil
}

// SetOptions sets the "options" field.
func (m *PipelineRunMutation) SetOptions(value map[string]interface{}) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *PipelineRunMutation) Options() (r map[string]interface{}, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ClearOptions clears the value of the "options" field.
func (m *PipelineRunMutation) ClearOptions() {
	m.options = nil
	m.clearedFields[pipelinerun.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *PipelineRunMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *PipelineRunMutation) ResetOptions() {
	m.options = nil
	delete(m.clearedFields, pipelinerun.FieldOptions)
}

// SetStreamStages sets the "stream_stages" field.
func (m *PipelineRunMutation) SetStreamStages(s []string) {
	m.stream_stages = &s
	m.appendstream_stages = nil
}

// StreamStages returns the value of the "stream_stages" field in the mutation.
func (m *PipelineRunMutation) StreamStages() (r []string, exists bool) {
	v := m.stream_stages
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamStages returns the old "stream_stages" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStreamStages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamStages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamStages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamStages: %w", err)
	}
	return oldValue.StreamStages, nil
}

// AppendStreamStages adds s to the "stream_stages" field.
func (m *PipelineRunMutation) AppendStreamStages(s []string) {
	m.appendstream_stages = append(m.appendstream_stages, s...)
}

// AppendedStreamStages returns the list of values that were appended to the "stream_stages" field in this mutation.
func (m *PipelineRunMutation) AppendedStreamStages() ([]string, bool) {
	if len(m.appendstream_stages) == 0 {
		return nil, false
	}
	return m.appendstream_stages, true
}

// ClearStreamStages clears the value of the "stream_stages" field.
func (m *PipelineRunMutation) ClearStreamStages() {
	m.stream_stages = nil
	m.appendstream_stages = nil
	m.clearedFields[pipelinerun.FieldStreamStages] = struct{}{}
}

// StreamStagesCleared returns if the "stream_stages" field was cleared in this mutation.
func (m *PipelineRunMutation) StreamStagesCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStreamStages]
	return ok
}

// ResetStreamStages resets all changes to the "stream_stages" field.
func (m *PipelineRunMutation) ResetStreamStages() {
	m.stream_stages = nil
	m.appendstream_stages = nil
	delete(m.clearedFields, pipelinerun.FieldStreamStages)
}

// SetPeerReviewFatal sets the "peer_review_fatal" field.
func (m *PipelineRunMutation) SetPeerReviewFatal(b bool) {
	m.peer_review_fatal = &b
}

// PeerReviewFatal returns the value of the "peer_review_fatal" field in the mutation.
func (m *PipelineRunMutation) PeerReviewFatal() (r bool, exists bool) {
	v := m.peer_review_fatal
	if v == nil {
		return
	}
	return *v, true
}

// OldPeerReviewFatal returns the old "peer_review_fatal" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldPeerReviewFatal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeerReviewFatal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeerReviewFatal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeerReviewFatal: %w", err)
	}
	return oldValue.PeerReviewFatal, nil
}

// ResetPeerReviewFatal resets all changes to the "peer_review_fatal" field.
func (m *PipelineRunMutation) ResetPeerReviewFatal() {
	m.peer_review_fatal = nil
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetFinalText sets the "final_text" field.
func (m *PipelineRunMutation) SetFinalText(s string) {
	m.final_text = &s
}

// FinalText returns the value of the "final_text" field in the mutation.
func (m *PipelineRunMutation) FinalText() (r string, exists bool) {
	v := m.final_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalText returns the old "final_text" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldFinalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalText: %w", err)
	}
	return oldValue.FinalText, nil
}

// ClearFinalText clears the value of the "final_text" field.
func (m *PipelineRunMutation) ClearFinalText() {
	m.final_text = nil
	m.clearedFields[pipelinerun.FieldFinalText] = struct{}{}
}

// FinalTextCleared returns if the "final_text" field was cleared in this mutation.
func (m *PipelineRunMutation) FinalTextCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldFinalText]
	return ok
}

// ResetFinalText resets all changes to the "final_text" field.
func (m *PipelineRunMutation) ResetFinalText() {
	m.final_text = nil
	delete(m.clearedFields, pipelinerun.FieldFinalText)
}

// SetSynthesisModel sets the "synthesis_model" field.
func (m *PipelineRunMutation) SetSynthesisModel(s string) {
	m.synthesis_model = &s
}

// SynthesisModel returns the value of the "synthesis_model" field in the mutation.
func (m *PipelineRunMutation) SynthesisModel() (r string, exists bool) {
	v := m.synthesis_model
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesisModel returns the old "synthesis_model" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldSynthesisModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesisModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesisModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesisModel: %w", err)
	}
	return oldValue.SynthesisModel, nil
}

// ClearSynthesisModel clears the value of the "synthesis_model" field.
func (m *PipelineRunMutation) ClearSynthesisModel() {
	m.synthesis_model = nil
	m.clearedFields[pipelinerun.FieldSynthesisModel] = struct{}{}
}

// SynthesisModelCleared returns if the "synthesis_model" field was cleared in this mutation.
func (m *PipelineRunMutation) SynthesisModelCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldSynthesisModel]
	return ok
}

// ResetSynthesisModel resets all changes to the "synthesis_model" field.
func (m *PipelineRunMutation) ResetSynthesisModel() {
	m.synthesis_model = nil
	delete(m.clearedFields, pipelinerun.FieldSynthesisModel)
}

// SetErrorKind sets the "error_kind" field.
func (m *PipelineRunMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *PipelineRunMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *PipelineRunMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[pipelinerun.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *PipelineRunMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, pipelinerun.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinerun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinerun.FieldErrorMessage)
}

// SetErrorModels sets the "error_models" field.
func (m *PipelineRunMutation) SetErrorModels(s []string) {
	m.error_models = &s
	m.appenderror_models = nil
}

// ErrorModels returns the value of the "error_models" field in the mutation.
func (m *PipelineRunMutation) ErrorModels() (r []string, exists bool) {
	v := m.error_models
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorModels returns the old "error_models" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorModels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorModels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorModels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorModels: %w", err)
	}
	return oldValue.ErrorModels, nil
}

// AppendErrorModels adds s to the "error_models" field.
func (m *PipelineRunMutation) AppendErrorModels(s []string) {
	m.appenderror_models = append(m.appenderror_models, s...)
}

// AppendedErrorModels returns the list of values that were appended to the "error_models" field in this mutation.
func (m *PipelineRunMutation) AppendedErrorModels() ([]string, bool) {
	if len(m.appenderror_models) == 0 {
		return nil, false
	}
	return m.appenderror_models, true
}

// ClearErrorModels clears the value of the "error_models" field.
func (m *PipelineRunMutation) ClearErrorModels() {
	m.error_models = nil
	m.appenderror_models = nil
	m.clearedFields[pipelinerun.FieldErrorModels] = struct{}{}
}

// ErrorModelsCleared returns if the "error_models" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorModelsCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorModels]
	return ok
}

// ResetErrorModels resets all changes to the "error_models" field.
func (m *PipelineRunMutation) ResetErrorModels() {
	m.error_models = nil
	m.appenderror_models = nil
	delete(m.clearedFields, pipelinerun.FieldErrorModels)
}

// SetWorkerID sets the "worker_id" field.
func (m *PipelineRunMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *PipelineRunMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *PipelineRunMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[pipelinerun.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *PipelineRunMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *PipelineRunMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, pipelinerun.FieldWorkerID)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *PipelineRunMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *PipelineRunMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *PipelineRunMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[pipelinerun.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *PipelineRunMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *PipelineRunMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, pipelinerun.FieldLastHeartbeat)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PipelineRunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[pipelinerun.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PipelineRunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, pipelinerun.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinerun.FieldCompletedAt)
}

// AddStageIDs adds the "stages" edge to the StageRecord entity by ids.
func (m *PipelineRunMutation) AddStageIDs(ids ...string) {
	if m.stages == nil {
		m.stages = make(map[string]struct{})
	}
	for i := range ids {
		m.stages[ids[i]] = struct{}{}
	}
}

// ClearStages clears the "stages" edge to the StageRecord entity.
func (m *PipelineRunMutation) ClearStages() {
	m.clearedstages = true
}

// StagesCleared reports if the "stages" edge to the StageRecord entity was cleared.
func (m *PipelineRunMutation) StagesCleared() bool {
	return m.clearedstages
}

// RemoveStageIDs removes the "stages" edge to the StageRecord entity by IDs.
func (m *PipelineRunMutation) RemoveStageIDs(ids ...string) {
	if m.removedstages == nil {
		m.removedstages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stages, ids[i])
		m.removedstages[ids[i]] = struct{}{}
	}
}

// RemovedStages returns the removed IDs of the "stages" edge to the StageRecord entity.
func (m *PipelineRunMutation) RemovedStagesIDs() (ids []string) {
	for id := range m.removedstages {
		ids = append(ids, id)
	}
	return
}

// StagesIDs returns the "stages" edge IDs in the mutation.
func (m *PipelineRunMutation) StagesIDs() (ids []string) {
	for id := range m.stages {
		ids = append(ids, id)
	}
	return
}

// ResetStages resets all changes to the "stages" edge.
func (m *PipelineRunMutation) ResetStages() {
	m.stages = nil
	m.clearedstages = false
	m.removedstages = nil
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.prompt != nil {
		fields = append(fields, pipelinerun.FieldPrompt)
	}
	if m.candidate_models != nil {
		fields = append(fields, pipelinerun.FieldCandidateModels)
	}
	if m.options != nil {
		fields = append(fields, pipelinerun.FieldOptions)
	}
	if m.stream_stages != nil {
		fields = append(fields, pipelinerun.FieldStreamStages)
	}
	if m.peer_review_fatal != nil {
		fields = append(fields, pipelinerun.FieldPeerReviewFatal)
	}
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.final_text != nil {
		fields = append(fields, pipelinerun.FieldFinalText)
	}
	if m.synthesis_model != nil {
		fields = append(fields, pipelinerun.FieldSynthesisModel)
	}
	if m.error_kind != nil {
		fields = append(fields, pipelinerun.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	if m.error_models != nil {
		fields = append(fields, pipelinerun.FieldErrorModels)
	}
	if m.worker_id != nil {
		fields = append(fields, pipelinerun.FieldWorkerID)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, pipelinerun.FieldLastHeartbeat)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinerun.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldPrompt:
		return m.Prompt()
	case pipelinerun.FieldCandidateModels:
		return m.CandidateModels()
	case pipelinerun.FieldOptions:
		return m.Options()
	case pipelinerun.FieldStreamStages:
		return m.StreamStages()
	case pipelinerun.FieldPeerReviewFatal:
		return m.PeerReviewFatal()
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldFinalText:
		return m.FinalText()
	case pipelinerun.FieldSynthesisModel:
		return m.SynthesisModel()
	case pipelinerun.FieldErrorKind:
		return m.ErrorKind()
	case pipelinerun.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinerun.FieldErrorModels:
		return m.ErrorModels()
	case pipelinerun.FieldWorkerID:
		return m.WorkerID()
	case pipelinerun.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case pipelinerun.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldPrompt:
		return m.OldPrompt(ctx)
	case pipelinerun.FieldCandidateModels:
		return m.OldCandidateModels(ctx)
	case pipelinerun.FieldOptions:
		return m.OldOptions(ctx)
	case pipelinerun.FieldStreamStages:
		return m.OldStreamStages(ctx)
	case pipelinerun.FieldPeerReviewFatal:
		return m.OldPeerReviewFatal(ctx)
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldFinalText:
		return m.OldFinalText(ctx)
	case pipelinerun.FieldSynthesisModel:
		return m.OldSynthesisModel(ctx)
	case pipelinerun.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case pipelinerun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinerun.FieldErrorModels:
		return m.OldErrorModels(ctx)
	case pipelinerun.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case pipelinerun.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case pipelinerun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case pipelinerun.FieldCandidateModels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateModels(v)
		return nil
	case pipelinerun.FieldOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case pipelinerun.FieldStreamStages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamStages(v)
		return nil
	case pipelinerun.FieldPeerReviewFatal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeerReviewFatal(v)
		return nil
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldFinalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalText(v)
		return nil
	case pipelinerun.FieldSynthesisModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesisModel(v)
		return nil
	case pipelinerun.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case pipelinerun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinerun.FieldErrorModels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorModels(v)
		return nil
	case pipelinerun.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case pipelinerun.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case pipelinerun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldOptions) {
		fields = append(fields, pipelinerun.FieldOptions)
	}
	if m.FieldCleared(pipelinerun.FieldStreamStages) {
		fields = append(fields, pipelinerun.FieldStreamStages)
	}
	if m.FieldCleared(pipelinerun.FieldFinalText) {
		fields = append(fields, pipelinerun.FieldFinalText)
	}
	if m.FieldCleared(pipelinerun.FieldSynthesisModel) {
		fields = append(fields, pipelinerun.FieldSynthesisModel)
	}
	if m.FieldCleared(pipelinerun.FieldErrorKind) {
		fields = append(fields, pipelinerun.FieldErrorKind)
	}
	if m.FieldCleared(pipelinerun.FieldErrorMessage) {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinerun.FieldErrorModels) {
		fields = append(fields, pipelinerun.FieldErrorModels)
	}
	if m.FieldCleared(pipelinerun.FieldWorkerID) {
		fields = append(fields, pipelinerun.FieldWorkerID)
	}
	if m.FieldCleared(pipelinerun.FieldLastHeartbeat) {
		fields = append(fields, pipelinerun.FieldLastHeartbeat)
	}
	if m.FieldCleared(pipelinerun.FieldStartedAt) {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.FieldCleared(pipelinerun.FieldCompletedAt) {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldOptions:
		m.ClearOptions()
		return nil
	case pipelinerun.FieldStreamStages:
		m.ClearStreamStages()
		return nil
	case pipelinerun.FieldFinalText:
		m.ClearFinalText()
		return nil
	case pipelinerun.FieldSynthesisModel:
		m.ClearSynthesisModel()
		return nil
	case pipelinerun.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinerun.FieldErrorModels:
		m.ClearErrorModels()
		return nil
	case pipelinerun.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case pipelinerun.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldPrompt:
		m.ResetPrompt()
		return nil
	case pipelinerun.FieldCandidateModels:
		m.ResetCandidateModels()
		return nil
	case pipelinerun.FieldOptions:
		m.ResetOptions()
		return nil
	case pipelinerun.FieldStreamStages:
		m.ResetStreamStages()
		return nil
	case pipelinerun.FieldPeerReviewFatal:
		m.ResetPeerReviewFatal()
		return nil
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldFinalText:
		m.ResetFinalText()
		return nil
	case pipelinerun.FieldSynthesisModel:
		m.ResetSynthesisModel()
		return nil
	case pipelinerun.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinerun.FieldErrorModels:
		m.ResetErrorModels()
		return nil
	case pipelinerun.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case pipelinerun.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case pipelinerun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stages != nil {
		edges = append(edges, pipelinerun.EdgeStages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeStages:
		ids := make([]ent.Value, 0, len(m.stages))
		for id := range m.stages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstages != nil {
		edges = append(edges, pipelinerun.EdgeStages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeStages:
		ids := make([]ent.Value, 0, len(m.removedstages))
		for id := range m.removedstages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstages {
		edges = append(edges, pipelinerun.EdgeStages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinerun.EdgeStages:
		return m.clearedstages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	switch name {
	case pipelinerun.EdgeStages:
		m.ResetStages()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// StageRecordMutation represents an operation that mutates the StageRecord nodes in the graph.
type StageRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	stage_name         *string
	stage_index        *int
	addstage_index     *int
	success            *bool
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	run                *string
	clearedrun         bool
	model_calls        map[string]struct{}
	removedmodel_calls map[string]struct{}
	clearedmodel_calls bool
	done               bool
	oldValue           func(context.Context) (*StageRecord, error)
	predicates         []predicate.StageRecord
}

var _ ent.Mutation = (*StageRecordMutation)(nil)

// stagerecordOption allows management of the mutation configuration using functional options.
type stagerecordOption func(*StageRecordMutation)

// newStageRecordMutation creates new mutation for the StageRecord entity.
func newStageRecordMutation(c config, op Op, opts ...stagerecordOption) *StageRecordMutation {
	m := &StageRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeStageRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageRecordID sets the ID field of the mutation.
func withStageRecordID(id string) stagerecordOption {
	return func(m *StageRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *StageRecord
		)
		m.oldValue = func(ctx context.Context) (*StageRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageRecord sets the old StageRecord of the mutation.
func withStageRecord(node *StageRecord) stagerecordOption {
	return func(m *StageRecordMutation) {
		m.oldValue = func(context.Context) (*StageRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageRecord entities.
func (m *StageRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *StageRecordMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *StageRecordMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the StageRecord entity.
// If the StageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageRecordMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *StageRecordMutation) ResetRunID() {
	m.run = nil
}

// SetStageName sets the "stage_name" field.
func (m *StageRecordMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *StageRecordMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the StageRecord entity.
// If the StageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageRecordMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *StageRecordMutation) ResetStageName() {
	m.stage_name = nil
}

// SetStageIndex sets the "stage_index" field.
func (m *StageRecordMutation) SetStageIndex(i int) {
	m.stage_index = &i
	m.addstage_index = nil
}

// StageIndex returns the value of the "stage_index" field in the mutation.
func (m *StageRecordMutation) StageIndex() (r int, exists bool) {
	v := m.stage_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStageIndex returns the old "stage_index" field's value of the StageRecord entity.
// If the StageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageRecordMutation) OldStageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageIndex: %w", err)
	}
	return oldValue.StageIndex, nil
}

// AddStageIndex adds i to the "stage_index" field.
func (m *StageRecordMutation) AddStageIndex(i int) {
	if m.addstage_index != nil {
		*m.addstage_index += i
	} else {
		m.addstage_index = &i
	}
}

// AddedStageIndex returns the value that was added to the "stage_index" field in this mutation.
func (m *StageRecordMutation) AddedStageIndex() (r int, exists bool) {
	v := m.addstage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageIndex resets all changes to the "stage_index" field.
func (m *StageRecordMutation) ResetStageIndex() {
	m.stage_index = nil
	m.addstage_index = nil
}

// SetSuccess sets the "success" field.
func (m *StageRecordMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *StageRecordMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the StageRecord entity.
// If the StageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageRecordMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *StageRecordMutation) ResetSuccess() {
	m.success = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StageRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StageRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StageRecord entity.
// If the StageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StageRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *StageRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StageRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StageRecord entity.
// If the StageRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageRecordMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StageRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// ClearRun clears the "run" edge to the PipelineRun entity.
func (m *StageRecordMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[stagerecord.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PipelineRun entity was cleared.
func (m *StageRecordMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *StageRecordMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *StageRecordMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// AddModelCallIDs adds the "model_calls" edge to the ModelCall entity by ids.
func (m *StageRecordMutation) AddModelCallIDs(ids ...string) {
	if m.model_calls == nil {
		m.model_calls = make(map[string]struct{})
	}
	for i := range ids {
		m.model_calls[ids[i]] = struct{}{}
	}
}

// ClearModelCalls clears the "model_calls" edge to the ModelCall entity.
func (m *StageRecordMutation) ClearModelCalls() {
	m.clearedmodel_calls = true
}

// ModelCallsCleared reports if the "model_calls" edge to the ModelCall entity was cleared.
func (m *StageRecordMutation) ModelCallsCleared() bool {
	return m.clearedmodel_calls
}

// RemoveModelCallIDs removes the "model_calls" edge to the ModelCall entity by IDs.
func (m *StageRecordMutation) RemoveModelCallIDs(ids ...string) {
	if m.removedmodel_calls == nil {
		m.removedmodel_calls = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.model_calls, ids[i])
		m.removedmodel_calls[ids[i]] = struct{}{}
	}
}

// RemovedModelCalls returns the removed IDs of the "model_calls" edge to the ModelCall entity.
func (m *StageRecordMutation) RemovedModelCallsIDs() (ids []string) {
	for id := range m.removedmodel_calls {
		ids = append(ids, id)
	}
	return
}

// ModelCallsIDs returns the "model_calls" edge IDs in the mutation.
func (m *StageRecordMutation) ModelCallsIDs() (ids []string) {
	for id := range m.model_calls {
		ids = append(ids, id)
	}
	return
}

// ResetModelCalls resets all changes to the "model_calls" edge.
func (m *StageRecordMutation) ResetModelCalls() {
	m.model_calls = nil
	m.clearedmodel_calls = false
	m.removedmodel_calls = nil
}

// Where appends a list predicates to the StageRecordMutation builder.
func (m *StageRecordMutation) Where(ps ...predicate.StageRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageRecord).
func (m *StageRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, stagerecord.FieldRunID)
	}
	if m.stage_name != nil {
		fields = append(fields, stagerecord.FieldStageName)
	}
	if m.stage_index != nil {
		fields = append(fields, stagerecord.FieldStageIndex)
	}
	if m.success != nil {
		fields = append(fields, stagerecord.FieldSuccess)
	}
	if m.started_at != nil {
		fields = append(fields, stagerecord.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stagerecord.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stagerecord.FieldRunID:
		return m.RunID()
	case stagerecord.FieldStageName:
		return m.StageName()
	case stagerecord.FieldStageIndex:
		return m.StageIndex()
	case stagerecord.FieldSuccess:
		return m.Success()
	case stagerecord.FieldStartedAt:
		return m.StartedAt()
	case stagerecord.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stagerecord.FieldRunID:
		return m.OldRunID(ctx)
	case stagerecord.FieldStageName:
		return m.OldStageName(ctx)
	case stagerecord.FieldStageIndex:
		return m.OldStageIndex(ctx)
	case stagerecord.FieldSuccess:
		return m.OldSuccess(ctx)
	case stagerecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stagerecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stagerecord.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case stagerecord.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case stagerecord.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageIndex(v)
		return nil
	case stagerecord.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case stagerecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stagerecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageRecordMutation) AddedFields() []string {
	var fields []string
	if m.addstage_index != nil {
		fields = append(fields, stagerecord.FieldStageIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stagerecord.FieldStageIndex:
		return m.AddedStageIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stagerecord.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageIndex(v)
		return nil
	}
	return fmt.Errorf("unknown StageRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StageRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageRecordMutation) ResetField(name string) error {
	switch name {
	case stagerecord.FieldRunID:
		m.ResetRunID()
		return nil
	case stagerecord.FieldStageName:
		m.ResetStageName()
		return nil
	case stagerecord.FieldStageIndex:
		m.ResetStageIndex()
		return nil
	case stagerecord.FieldSuccess:
		m.ResetSuccess()
		return nil
	case stagerecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stagerecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StageRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.run != nil {
		edges = append(edges, stagerecord.EdgeRun)
	}
	if m.model_calls != nil {
		edges = append(edges, stagerecord.EdgeModelCalls)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stagerecord.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	case stagerecord.EdgeModelCalls:
		ids := make([]ent.Value, 0, len(m.model_calls))
		for id := range m.model_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmodel_calls != nil {
		edges = append(edges, stagerecord.EdgeModelCalls)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stagerecord.EdgeModelCalls:
		ids := make([]ent.Value, 0, len(m.removedmodel_calls))
		for id := range m.removedmodel_calls {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrun {
		edges = append(edges, stagerecord.EdgeRun)
	}
	if m.clearedmodel_calls {
		edges = append(edges, stagerecord.EdgeModelCalls)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case stagerecord.EdgeRun:
		return m.clearedrun
	case stagerecord.EdgeModelCalls:
		return m.clearedmodel_calls
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageRecordMutation) ClearEdge(name string) error {
	switch name {
	case stagerecord.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown StageRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageRecordMutation) ResetEdge(name string) error {
	switch name {
	case stagerecord.EdgeRun:
		m.ResetRun()
		return nil
	case stagerecord.EdgeModelCalls:
		m.ResetModelCalls()
		return nil
	}
	return fmt.Errorf("unknown StageRecord edge %s", name)
}
