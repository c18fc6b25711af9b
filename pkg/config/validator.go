package config

import (
	"errors"
	"fmt"

	"github.com/quorum-ai/quorum/pkg/resilience"
)

// Validator performs comprehensive validation on loaded configuration
type Validator struct {
	cfg  *Config
	errs []error
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every configuration section and returns all
// problems found, not just the first one.
func (v *Validator) ValidateAll() error {
	v.validateModels()
	v.validateDefaults()
	v.validateQueue()
	v.validateRetention()

	if len(v.errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(v.errs...))
	}
	return nil
}

func (v *Validator) addError(component, id, field string, err error) {
	v.errs = append(v.errs, NewValidationError(component, id, field, err))
}

func (v *Validator) validateModels() {
	models := v.cfg.Models.GetAll()
	if len(models) == 0 {
		v.addError("models", "registry", "", fmt.Errorf("%w: at least one model must be configured", ErrMissingRequiredField))
		return
	}

	for id, m := range models {
		if m.Provider == "" {
			v.addError("model", id, "provider", ErrMissingRequiredField)
		} else if !knownProviderTypes[m.Provider] {
			v.addError("model", id, "provider", fmt.Errorf("%w: %q", ErrInvalidValue, m.Provider))
		}
		if m.Model == "" {
			v.addError("model", id, "model", ErrMissingRequiredField)
		}
		if m.Timeout < 0 {
			v.addError("model", id, "timeout", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
		}

		if m.Resilience.Breaker.Threshold < 1 {
			v.addError("model", id, "circuit_breaker.threshold", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
		}
		if m.Resilience.Breaker.RecoveryTimeout <= 0 {
			v.addError("model", id, "circuit_breaker.recovery_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
		}
		if m.Resilience.Retry.MaxAttempts < 1 {
			v.addError("model", id, "retry.max_attempts", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
		}
		if m.Resilience.Retry.Multiplier < 1 {
			v.addError("model", id, "retry.multiplier", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
		}
		if jf := m.Resilience.Retry.JitterFraction; jf < 0 || jf > 1 {
			v.addError("model", id, "retry.jitter", fmt.Errorf("%w: must be within [0, 1]", ErrInvalidValue))
		}
		if mode := m.Resilience.RateLimit.Mode; mode != "" &&
			mode != resilience.RateLimitWait && mode != resilience.RateLimitFailFast {
			v.addError("model", id, "rate_limit.mode", fmt.Errorf("%w: %q", ErrInvalidValue, mode))
		}
	}
}

func (v *Validator) validateDefaults() {
	d := v.cfg.Defaults
	if d == nil {
		return
	}
	if len(d.CandidateModels) == 0 {
		v.addError("defaults", "candidate_models", "", fmt.Errorf("%w: at least one default model is required", ErrMissingRequiredField))
	}
	seen := make(map[string]bool, len(d.CandidateModels))
	for _, id := range d.CandidateModels {
		if seen[id] {
			v.addError("defaults", "candidate_models", id, fmt.Errorf("%w: duplicate model", ErrInvalidValue))
			continue
		}
		seen[id] = true
		if !v.cfg.Models.Has(id) {
			v.addError("defaults", "candidate_models", id, ErrModelNotFound)
		}
	}
	if d.StreamBuffer < 1 {
		v.addError("defaults", "stream_buffer", "", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
}

func (v *Validator) validateQueue() {
	q := v.cfg.Queue
	if q == nil {
		return
	}
	if q.WorkerCount < 1 {
		v.addError("queue", "worker_count", "", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if q.MaxConcurrentRuns < 1 {
		v.addError("queue", "max_concurrent_runs", "", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if q.PollInterval <= 0 {
		v.addError("queue", "poll_interval", "", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.RunTimeout <= 0 {
		v.addError("queue", "run_timeout", "", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.OrphanThreshold <= 0 {
		v.addError("queue", "orphan_threshold", "", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.HeartbeatInterval > 0 && q.OrphanThreshold > 0 && q.HeartbeatInterval >= q.OrphanThreshold {
		v.addError("queue", "heartbeat_interval", "", fmt.Errorf("%w: must be shorter than orphan_threshold", ErrInvalidValue))
	}
}

func (v *Validator) validateRetention() {
	r := v.cfg.Retention
	if r == nil {
		return
	}
	if r.RunRetentionDays < 1 {
		v.addError("retention", "run_retention_days", "", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if r.EventTTL <= 0 {
		v.addError("retention", "event_ttl", "", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.CleanupInterval <= 0 {
		v.addError("retention", "cleanup_interval", "", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
}
