package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidChannel(t *testing.T) {
	assert.True(t, validChannel(GlobalRunsChannel))
	assert.True(t, validChannel(RunChannel("abc-123")))
	assert.False(t, validChannel(""))
	assert.False(t, validChannel("run:"))
	assert.False(t, validChannel("sessions"))
	assert.False(t, validChannel("rundown:1"))
}

func TestSubscribeTracksChannels(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)
	c1 := &Connection{ID: "c1", subscriptions: make(map[string]struct{})}
	c2 := &Connection{ID: "c2", subscriptions: make(map[string]struct{})}
	m.registerConnection(c1)
	m.registerConnection(c2)

	ch := RunChannel("run-1")
	require.NoError(t, m.subscribe(c1, ch))
	require.NoError(t, m.subscribe(c2, ch))
	assert.Equal(t, 2, m.subscriberCount(ch))

	// Re-subscribing is idempotent.
	require.NoError(t, m.subscribe(c1, ch))
	assert.Equal(t, 2, m.subscriberCount(ch))

	m.unsubscribe(c1, ch)
	assert.Equal(t, 1, m.subscriberCount(ch))
	assert.NotContains(t, c1.subscriptions, ch)

	m.unsubscribe(c2, ch)
	assert.Equal(t, 0, m.subscriberCount(ch))
}

func TestUnsubscribeUnknownChannelIsNoop(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)
	c := &Connection{ID: "c1", subscriptions: make(map[string]struct{})}
	m.registerConnection(c)

	m.unsubscribe(c, RunChannel("never-subscribed"))
	assert.Equal(t, 0, m.subscriberCount(RunChannel("never-subscribed")))
}
