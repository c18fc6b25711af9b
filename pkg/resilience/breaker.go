// Package resilience provides the per-provider failure isolation primitives:
// circuit breaker, bounded retry, and rate limiting. State is shared across
// concurrent pipeline runs through an injected Registry, never through
// package-level globals.
package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned by Allow while the breaker is open. Calls
// rejected with this error never reach the provider.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// BreakerState is the circuit breaker state.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half_open"
)

// BreakerConfig holds per-provider breaker tuning.
type BreakerConfig struct {
	// Threshold is the consecutive failure count that opens the breaker.
	Threshold int
	// RecoveryTimeout is how long the breaker stays open before admitting
	// a single half-open probe.
	RecoveryTimeout time.Duration
}

// DefaultBreakerConfig returns the built-in breaker defaults.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Threshold:       5,
		RecoveryTimeout: 60 * time.Second,
	}
}

// Breaker is a three-state circuit breaker for one provider. It lives for
// the process lifetime and is shared by every run using that provider.
//
// The mutex protects only the state fields; it is never held across a
// provider call. Callers use Allow before the call and Record* after.
type Breaker struct {
	cfg BreakerConfig
	now func() time.Time // injectable clock for tests

	mu            sync.Mutex
	state         BreakerState
	failures      int
	openedAt      time.Time
	probeInFlight bool
}

// NewBreaker creates a closed breaker with the given config.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultBreakerConfig().Threshold
	}
	if cfg.RecoveryTimeout <= 0 {
		cfg.RecoveryTimeout = DefaultBreakerConfig().RecoveryTimeout
	}
	return &Breaker{
		cfg:   cfg,
		now:   time.Now,
		state: BreakerClosed,
	}
}

// Allow reports whether a call may proceed. While open it fails immediately
// with ErrCircuitOpen until the recovery timeout elapses, at which point a
// single probe call is admitted (half-open). Concurrent callers during
// half-open are rejected until the probe reports its outcome.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		return nil
	case BreakerOpen:
		if b.now().Sub(b.openedAt) < b.cfg.RecoveryTimeout {
			return ErrCircuitOpen
		}
		b.state = BreakerHalfOpen
		b.probeInFlight = true
		return nil
	case BreakerHalfOpen:
		if b.probeInFlight {
			return ErrCircuitOpen
		}
		b.probeInFlight = true
		return nil
	}
	return nil
}

// RecordSuccess reports a successful call. In half-open it fully closes the
// breaker; in closed it resets the consecutive failure count.
func (b *Breaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerHalfOpen:
		b.state = BreakerClosed
		b.failures = 0
		b.probeInFlight = false
		b.openedAt = time.Time{}
	case BreakerClosed:
		b.failures = 0
	}
}

// RecordFailure reports a failed call. In closed it counts toward the
// threshold; in half-open the failed probe re-opens the breaker and resets
// the recovery clock.
func (b *Breaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failures++
		if b.failures >= b.cfg.Threshold {
			b.state = BreakerOpen
			b.openedAt = b.now()
		}
	case BreakerHalfOpen:
		b.state = BreakerOpen
		b.openedAt = b.now()
		b.probeInFlight = false
	}
}

// ReleaseProbe reports that the half-open probe ended without a verdict on
// provider health, e.g. the run was cancelled mid-call. The breaker returns
// to open with the original recovery clock intact, so the next caller past
// the recovery timeout is admitted as a fresh probe instead of the breaker
// staying wedged in half-open.
func (b *Breaker) ReleaseProbe() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerHalfOpen {
		b.state = BreakerOpen
		b.probeInFlight = false
	}
}

// State returns the current breaker state.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Failures returns the current consecutive failure count.
func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}
