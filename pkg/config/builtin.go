package config

import (
	"time"

	"github.com/quorum-ai/quorum/pkg/resilience"
)

// Built-in model definitions. Users override or extend these in
// providers.yaml; a user entry with the same id replaces the built-in one
// entirely. Thresholds and timeouts differ per provider to reflect their
// observed reliability and latency profiles.

// builtinModels returns the built-in model configurations keyed by model id.
// Returned fresh on each call so callers can mutate their copy safely.
func builtinModels() map[string]*ModelConfig {
	return map[string]*ModelConfig{
		"gpt-4o": {
			Provider:   ProviderOpenAI,
			Model:      "gpt-4o",
			APIKeyEnv:  "OPENAI_API_KEY",
			Priority:   100,
			Timeout:    30 * time.Second,
			Resilience: resilienceProfile(5, 60*time.Second),
		},
		"claude-sonnet": {
			Provider:   ProviderAnthropic,
			Model:      "claude-sonnet-4-5",
			APIKeyEnv:  "ANTHROPIC_API_KEY",
			Priority:   90,
			Timeout:    35 * time.Second,
			Resilience: resilienceProfile(5, 60*time.Second),
		},
		"gemini-pro": {
			Provider:   ProviderGoogle,
			Model:      "gemini-2.5-pro",
			APIKeyEnv:  "GOOGLE_API_KEY",
			Priority:   80,
			Timeout:    40 * time.Second,
			Resilience: resilienceProfile(3, 90*time.Second),
		},
	}
}

// resilienceProfile builds a per-model resilience config from the values
// that actually vary between providers, keeping the shared retry shape.
func resilienceProfile(breakerThreshold int, recovery time.Duration) resilience.ProviderConfig {
	cfg := resilience.DefaultProviderConfig()
	cfg.Breaker.Threshold = breakerThreshold
	cfg.Breaker.RecoveryTimeout = recovery
	return cfg
}

// builtinDefaults returns the built-in pipeline defaults.
func builtinDefaults() *Defaults {
	return &Defaults{
		CandidateModels: []string{"gpt-4o", "claude-sonnet", "gemini-pro"},
		PeerReviewFatal: false,
		StreamBuffer:    256,
	}
}
