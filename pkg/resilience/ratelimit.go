package resilience

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when a call would exceed the provider's
// configured rate and the limiter is in fail-fast mode (or the bounded wait
// elapsed).
var ErrRateLimited = errors.New("provider rate limit exceeded")

// RateLimitMode selects how the limiter handles a call that would exceed
// the configured rate.
type RateLimitMode string

const (
	// RateLimitWait blocks up to MaxWait for a token.
	RateLimitWait RateLimitMode = "wait"
	// RateLimitFailFast rejects immediately with ErrRateLimited.
	RateLimitFailFast RateLimitMode = "fail_fast"
)

// RateLimitConfig holds per-provider rate limit tuning.
type RateLimitConfig struct {
	// EventsPerSecond is the sustained outbound call rate. Zero disables
	// rate limiting for the provider.
	EventsPerSecond float64
	// Burst is the token bucket size (defaults to 1 when rate is set).
	Burst int
	// Mode selects wait or fail-fast behavior.
	Mode RateLimitMode
	// MaxWait bounds how long a call may block in wait mode.
	MaxWait time.Duration
}

// DefaultRateLimitConfig returns the built-in rate limit defaults.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		EventsPerSecond: 10,
		Burst:           5,
		Mode:            RateLimitWait,
		MaxWait:         5 * time.Second,
	}
}

// RateLimiter gates outbound calls for one provider, independent of retries
// and circuit state. Shared across concurrent runs using the provider.
type RateLimiter struct {
	cfg     RateLimitConfig
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter from the config. A zero rate produces a
// limiter that admits every call.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.EventsPerSecond <= 0 {
		return &RateLimiter{cfg: cfg}
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	if cfg.Mode == "" {
		cfg.Mode = RateLimitWait
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = DefaultRateLimitConfig().MaxWait
	}
	return &RateLimiter{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.EventsPerSecond), burst),
	}
}

// Acquire obtains permission for one outbound call. In wait mode it blocks
// up to MaxWait (or ctx cancellation); in fail-fast mode it returns
// ErrRateLimited immediately when no token is available.
func (l *RateLimiter) Acquire(ctx context.Context) error {
	if l.limiter == nil {
		return nil
	}

	if l.cfg.Mode == RateLimitFailFast {
		if !l.limiter.Allow() {
			return ErrRateLimited
		}
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, l.cfg.MaxWait)
	defer cancel()
	if err := l.limiter.Wait(waitCtx); err != nil {
		// Propagate run cancellation as-is; a lapsed bounded wait is a
		// rate limit rejection.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrRateLimited
	}
	return nil
}
