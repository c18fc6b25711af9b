package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBreaker(threshold int, recovery time.Duration) (*Breaker, *time.Time) {
	b := NewBreaker(BreakerConfig{Threshold: threshold, RecoveryTimeout: recovery})
	now := time.Now()
	b.now = func() time.Time { return now }
	return b, &now
}

func TestBreakerOpensAtThreshold(t *testing.T) {
	b, _ := newTestBreaker(3, time.Minute)

	for i := 0; i < 2; i++ {
		require.NoError(t, b.Allow())
		b.RecordFailure()
	}
	assert.Equal(t, BreakerClosed, b.State())

	require.NoError(t, b.Allow())
	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())

	// Calls while open are rejected without reaching the provider.
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b, _ := newTestBreaker(3, time.Minute)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	assert.Equal(t, 0, b.Failures())

	// Two more failures should not open — the streak was broken.
	b.RecordFailure()
	b.RecordFailure()
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreakerHalfOpenRecovery(t *testing.T) {
	t.Run("single probe after recovery timeout", func(t *testing.T) {
		b, now := newTestBreaker(1, 30*time.Second)
		b.RecordFailure()
		require.Equal(t, BreakerOpen, b.State())

		// Before the timeout, still rejected.
		assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

		*now = now.Add(31 * time.Second)
		require.NoError(t, b.Allow())
		assert.Equal(t, BreakerHalfOpen, b.State())

		// Only one probe admitted while it is in flight.
		assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
	})

	t.Run("probe success closes", func(t *testing.T) {
		b, now := newTestBreaker(1, 30*time.Second)
		b.RecordFailure()
		*now = now.Add(time.Minute)
		require.NoError(t, b.Allow())

		b.RecordSuccess()
		assert.Equal(t, BreakerClosed, b.State())
		assert.Equal(t, 0, b.Failures())
		assert.NoError(t, b.Allow())
	})

	t.Run("released probe does not wedge half-open", func(t *testing.T) {
		b, now := newTestBreaker(1, 30*time.Second)
		b.RecordFailure()
		*now = now.Add(time.Minute)
		require.NoError(t, b.Allow())
		require.Equal(t, BreakerHalfOpen, b.State())

		// Probe ended without a verdict (cancelled mid-call). The breaker
		// returns to open on the original clock, so the next caller is
		// immediately admitted as a fresh probe rather than rejected forever.
		b.ReleaseProbe()
		assert.Equal(t, BreakerOpen, b.State())
		require.NoError(t, b.Allow())
		assert.Equal(t, BreakerHalfOpen, b.State())

		b.RecordSuccess()
		assert.Equal(t, BreakerClosed, b.State())
	})

	t.Run("release outside half-open is a no-op", func(t *testing.T) {
		b, _ := newTestBreaker(3, time.Minute)
		b.ReleaseProbe()
		assert.Equal(t, BreakerClosed, b.State())

		b.RecordFailure()
		b.ReleaseProbe()
		assert.Equal(t, 1, b.Failures())
	})

	t.Run("probe failure reopens and resets clock", func(t *testing.T) {
		b, now := newTestBreaker(1, 30*time.Second)
		b.RecordFailure()
		*now = now.Add(time.Minute)
		require.NoError(t, b.Allow())

		b.RecordFailure()
		assert.Equal(t, BreakerOpen, b.State())

		// Recovery clock restarted at the probe failure.
		*now = now.Add(29 * time.Second)
		assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
		*now = now.Add(2 * time.Second)
		assert.NoError(t, b.Allow())
	})
}

func TestRegistrySharesStatePerProvider(t *testing.T) {
	reg := NewRegistry(map[string]ProviderConfig{
		"alpha": {Breaker: BreakerConfig{Threshold: 2, RecoveryTimeout: time.Minute}},
	})

	// Same provider id yields the same breaker instance.
	assert.Same(t, reg.Breaker("alpha"), reg.Breaker("alpha"))

	// Different providers are fully isolated.
	reg.Breaker("alpha").RecordFailure()
	reg.Breaker("alpha").RecordFailure()
	assert.Equal(t, BreakerOpen, reg.Breaker("alpha").State())
	assert.Equal(t, BreakerClosed, reg.Breaker("beta").State())

	// Unknown providers fall back to defaults.
	assert.Equal(t, DefaultRetryConfig(), reg.RetryConfig("beta"))
}
