package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, quorumYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quorum.yaml"), []byte(quorumYAML), 0o644))
	if providersYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "providers.yaml"), []byte(providersYAML), 0o644))
	}
	return dir
}

func TestInitializeWithBuiltinModels(t *testing.T) {
	dir := writeConfigFiles(t, "defaults:\n  stream_buffer: 64\n", "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Built-in models are available without a providers.yaml.
	assert.True(t, cfg.Models.Has("gpt-4o"))
	assert.True(t, cfg.Models.Has("claude-sonnet"))
	assert.True(t, cfg.Models.Has("gemini-pro"))

	// YAML overrides merge over built-in defaults without clearing them.
	assert.Equal(t, 64, cfg.Defaults.StreamBuffer)
	assert.Equal(t, []string{"gpt-4o", "claude-sonnet", "gemini-pro"}, cfg.Defaults.CandidateModels)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
}

func TestInitializeUserModelOverride(t *testing.T) {
	providers := `
models:
  gpt-4o:
    provider: openai
    model: gpt-4o-2024
    api_key_env: OPENAI_API_KEY
    priority: 42
    timeout: 12s
    circuit_breaker:
      threshold: 2
      recovery_timeout: 90s
    retry:
      max_attempts: 4
      initial_delay: 250ms
    rate_limit:
      events_per_second: 3
      mode: fail_fast
`
	dir := writeConfigFiles(t, "{}\n", providers)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	m, err := cfg.GetModel("gpt-4o")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, m.Provider)
	assert.Equal(t, "gpt-4o-2024", m.Model)
	assert.Equal(t, 42, m.Priority)
	assert.Equal(t, 12*time.Second, m.Timeout)
	assert.Equal(t, 2, m.Resilience.Breaker.Threshold)
	assert.Equal(t, 90*time.Second, m.Resilience.Breaker.RecoveryTimeout)
	assert.Equal(t, 4, m.Resilience.Retry.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, m.Resilience.Retry.InitialDelay)
	// Unset retry values keep their defaults.
	assert.Equal(t, 10*time.Second, m.Resilience.Retry.MaxDelay)
	assert.Equal(t, float64(3), m.Resilience.RateLimit.EventsPerSecond)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_KEY_ENV", "MY_SECRET_ENV")

	providers := `
models:
  custom-model:
    provider: custom
    model: local-llm
    api_key_env: "{{.TEST_KEY_ENV}}"
    priority: 1
`
	dir := writeConfigFiles(t, "defaults:\n  candidate_models: [custom-model]\n", providers)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	m, err := cfg.GetModel("custom-model")
	require.NoError(t, err)
	assert.Equal(t, "MY_SECRET_ENV", m.APIKeyEnv)
}

func TestInitializeMissingQuorumYAML(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidDuration(t *testing.T) {
	providers := `
models:
  bad:
    provider: openai
    model: x
    timeout: not-a-duration
`
	dir := writeConfigFiles(t, "{}\n", providers)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestInitializeValidationFailures(t *testing.T) {
	quorum := `
defaults:
  candidate_models: [gpt-4o, no-such-model]
queue:
  worker_count: -1
`
	dir := writeConfigFiles(t, quorum, "")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, ErrModelNotFound)
	assert.Contains(t, err.Error(), "worker_count")
}

func TestInitializeRetentionDefaults(t *testing.T) {
	dir := writeConfigFiles(t, "{}\n", "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	require.NotNil(t, cfg.Retention)
	assert.Equal(t, 90, cfg.Retention.RunRetentionDays)
	assert.Equal(t, 24*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 6*time.Hour, cfg.Retention.CleanupInterval)
}

func TestInitializeRetentionOverride(t *testing.T) {
	quorum := `
retention:
  run_retention_days: 30
  cleanup_interval: 1h
`
	dir := writeConfigFiles(t, quorum, "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Retention.RunRetentionDays)
	assert.Equal(t, time.Hour, cfg.Retention.CleanupInterval)
	// Unset retention values keep their defaults.
	assert.Equal(t, 24*time.Hour, cfg.Retention.EventTTL)
}

func TestInitializeRetentionValidation(t *testing.T) {
	quorum := `
retention:
  run_retention_days: -7
`
	dir := writeConfigFiles(t, quorum, "")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "run_retention_days")
}

func TestInitializeUnknownProviderType(t *testing.T) {
	providers := `
models:
  weird:
    provider: acme
    model: x
`
	dir := writeConfigFiles(t, "{}\n", providers)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "acme")
}
