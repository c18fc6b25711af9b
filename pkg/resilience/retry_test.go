package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig(maxAttempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    maxAttempts,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	errTransient := errors.New("upstream hiccup")

	calls := 0
	attempts, err := Retry(context.Background(), fastRetryConfig(3), func() error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, calls)
}

func TestRetryStopsAtMaxAttempts(t *testing.T) {
	errTransient := errors.New("still down")

	calls := 0
	attempts, err := Retry(context.Background(), fastRetryConfig(4), func() error {
		calls++
		return errTransient
	})

	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, 4, calls)
}

func TestRetryPermanentErrorAttemptedOnce(t *testing.T) {
	errClient := errors.New("bad request")

	calls := 0
	attempts, err := Retry(context.Background(), fastRetryConfig(4), func() error {
		calls++
		return Permanent(errClient)
	})

	require.ErrorIs(t, err, errClient)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := fastRetryConfig(10)
	cfg.InitialDelay = time.Hour // retries would wait forever without cancel

	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := Retry(ctx, cfg, func() error {
			calls++
			return errors.New("transient")
		})
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("retry did not observe cancellation")
	}
}

func TestRateLimiterFailFast(t *testing.T) {
	l := NewRateLimiter(RateLimitConfig{
		EventsPerSecond: 1,
		Burst:           1,
		Mode:            RateLimitFailFast,
	})

	require.NoError(t, l.Acquire(context.Background()))
	assert.ErrorIs(t, l.Acquire(context.Background()), ErrRateLimited)
}

func TestRateLimiterZeroRateAdmitsAll(t *testing.T) {
	l := NewRateLimiter(RateLimitConfig{})
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Acquire(context.Background()))
	}
}

func TestRateLimiterBoundedWait(t *testing.T) {
	l := NewRateLimiter(RateLimitConfig{
		EventsPerSecond: 0.1, // one token per 10s — the wait cannot succeed
		Burst:           1,
		Mode:            RateLimitWait,
		MaxWait:         10 * time.Millisecond,
	})

	require.NoError(t, l.Acquire(context.Background()))

	start := time.Now()
	err := l.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Less(t, time.Since(start), 5*time.Second)
}
