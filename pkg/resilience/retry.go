package resilience

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig holds per-provider retry tuning.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the exponential backoff delay.
	MaxDelay time.Duration
	// Multiplier grows the delay between attempts (must be >= 1.5).
	Multiplier float64
	// JitterFraction randomizes each delay by ±fraction (0.1 = ±10%).
	JitterFraction float64
}

// DefaultRetryConfig returns the built-in retry defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       10 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// Permanent marks an error as non-retryable: Retry surfaces it immediately
// without waiting out the backoff schedule.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Retry runs op with bounded exponential backoff and jitter. op is attempted
// up to cfg.MaxAttempts times; errors wrapped with Permanent stop retrying
// immediately, as does context cancellation. The returned attempt count
// includes the final (successful or surfaced) attempt.
func Retry(ctx context.Context, cfg RetryConfig, op func() error) (attempts int, err error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultRetryConfig().MaxAttempts
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = cfg.InitialDelay
	eb.MaxInterval = cfg.MaxDelay
	eb.Multiplier = cfg.Multiplier
	eb.RandomizationFactor = cfg.JitterFraction
	eb.MaxElapsedTime = 0 // bounded by attempt count and ctx, not wall clock
	eb.Reset()

	// MaxAttempts includes the first attempt; backoff counts retries.
	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(cfg.MaxAttempts-1)), ctx)

	err = backoff.Retry(func() error {
		attempts++
		return op()
	}, b)
	return attempts, err
}
