package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(sub *Subscription) []Event {
	var out []Event
	for evt := range sub.Events() {
		out = append(out, evt)
	}
	return out
}

func TestEmitterSequencesAreContiguous(t *testing.T) {
	e := NewEmitter("run-1")
	sub := e.Subscribe(16)

	e.Emit(NewEvent(EventTypePipelineStart, PipelineStartData{CorrelationID: "run-1"}))
	e.Emit(NewEvent(EventTypeStageStart, StageStartData{StageName: "initial_response"}))
	e.Emit(NewEvent(EventTypeStageComplete, nil))
	e.Emit(NewEvent(EventTypePipelineComplete, nil))

	got := collect(sub)
	require.Len(t, got, 4)
	for i, evt := range got {
		assert.Equal(t, i+1, evt.Sequence)
	}
	assert.NoError(t, sub.Err())

	log := e.Log()
	require.Len(t, log, 4)
	assert.Equal(t, EventTypePipelineComplete, log[3].EventType)
}

func TestEmitterTerminalEventClosesStream(t *testing.T) {
	e := NewEmitter("run-1")
	sub := e.Subscribe(4)

	e.Emit(NewEvent(EventTypePipelineError, PipelineErrorData{ErrorKind: "cancelled"}))

	got := collect(sub)
	require.Len(t, got, 1)

	// Emissions after the terminal event are ignored.
	e.Emit(NewEvent(EventTypeStageStart, nil))
	assert.Len(t, e.Log(), 1)

	// Late subscribers get an already-closed channel.
	late := e.Subscribe(4)
	assert.Empty(t, collect(late))
}

func TestEmitterTypeFilter(t *testing.T) {
	e := NewEmitter("run-1")
	sub := e.Subscribe(16, EventTypeSynthesisChunk, EventTypePipelineComplete)

	e.Emit(NewEvent(EventTypePipelineStart, nil))
	e.Emit(NewEvent(EventTypeSynthesisChunk, SynthesisChunkData{Delta: "a"}))
	e.Emit(NewEvent(EventTypeModelResponse, nil))
	e.Emit(NewEvent(EventTypeSynthesisChunk, SynthesisChunkData{Delta: "b"}))
	e.Emit(NewEvent(EventTypePipelineComplete, nil))

	got := collect(sub)
	require.Len(t, got, 3)
	assert.Equal(t, EventTypeSynthesisChunk, got[0].EventType)
	// Filtered subscriptions still see the run-global sequence numbers.
	assert.Equal(t, 2, got[0].Sequence)
	assert.Equal(t, 5, got[2].Sequence)
}

func TestEmitterSlowConsumerIsClosedNotSkipped(t *testing.T) {
	e := NewEmitter("run-1")
	sub := e.Subscribe(2)

	e.Emit(NewEvent(EventTypePipelineStart, nil))
	e.Emit(NewEvent(EventTypeStageStart, nil))
	// Buffer full — this emission must close the subscription.
	e.Emit(NewEvent(EventTypeModelStart, nil))

	got := collect(sub)
	assert.Len(t, got, 2)
	assert.ErrorIs(t, sub.Err(), ErrSlowConsumer)

	// The emitter itself keeps going: the log has all three events.
	assert.Len(t, e.Log(), 3)
}

func TestEmitterUnsubscribe(t *testing.T) {
	e := NewEmitter("run-1")
	sub := e.Subscribe(4)

	e.Emit(NewEvent(EventTypePipelineStart, nil))
	e.Unsubscribe(sub)
	e.Emit(NewEvent(EventTypeStageStart, nil))

	got := collect(sub)
	assert.Len(t, got, 1)
	assert.NoError(t, sub.Err())
}
