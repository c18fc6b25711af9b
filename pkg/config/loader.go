package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/quorum-ai/quorum/pkg/resilience"
)

// QuorumYAMLConfig represents the complete quorum.yaml file structure
type QuorumYAMLConfig struct {
	System    *SystemYAMLConfig `yaml:"system"`
	Defaults  *Defaults         `yaml:"defaults"`
	Queue     *QueueConfig      `yaml:"queue"`
	Retention *RetentionConfig  `yaml:"retention"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string   `yaml:"dashboard_url"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// ProvidersYAMLConfig represents the complete providers.yaml file structure
type ProvidersYAMLConfig struct {
	Models map[string]ModelYAMLConfig `yaml:"models"`
}

// ModelYAMLConfig is the YAML shape of one model entry. Durations are
// strings ("30s", "500ms") parsed during resolution; unset resilience
// sections inherit the built-in defaults.
type ModelYAMLConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Priority  int    `yaml:"priority"`
	Timeout   string `yaml:"timeout,omitempty"`

	Retry     *RetryYAMLConfig     `yaml:"retry,omitempty"`
	Breaker   *BreakerYAMLConfig   `yaml:"circuit_breaker,omitempty"`
	RateLimit *RateLimitYAMLConfig `yaml:"rate_limit,omitempty"`
}

// RetryYAMLConfig holds per-model retry tuning from YAML.
type RetryYAMLConfig struct {
	MaxAttempts    int     `yaml:"max_attempts,omitempty"`
	InitialDelay   string  `yaml:"initial_delay,omitempty"`
	MaxDelay       string  `yaml:"max_delay,omitempty"`
	Multiplier     float64 `yaml:"multiplier,omitempty"`
	JitterFraction float64 `yaml:"jitter,omitempty"`
}

// BreakerYAMLConfig holds per-model circuit breaker tuning from YAML.
type BreakerYAMLConfig struct {
	Threshold       int    `yaml:"threshold,omitempty"`
	RecoveryTimeout string `yaml:"recovery_timeout,omitempty"`
}

// RateLimitYAMLConfig holds per-model rate limit tuning from YAML.
type RateLimitYAMLConfig struct {
	EventsPerSecond float64 `yaml:"events_per_second,omitempty"`
	Burst           int     `yaml:"burst,omitempty"`
	Mode            string  `yaml:"mode,omitempty"` // "wait" or "fail_fast"
	MaxWait         string  `yaml:"max_wait,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build the in-memory model registry
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"models", cfg.Stats().Models)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	// 1. Load quorum.yaml (system, defaults, queue)
	quorumConfig, err := loader.loadQuorumYAML()
	if err != nil {
		return nil, NewLoadError("quorum.yaml", err)
	}

	// 2. Load providers.yaml (candidate models); a missing file means the
	// built-in models are used as-is.
	userModels, err := loader.loadProvidersYAML()
	if err != nil {
		return nil, NewLoadError("providers.yaml", err)
	}

	// 3. Merge built-in + user-defined models (user replaces built-in per id)
	models := builtinModels()
	for id, yamlModel := range userModels {
		resolved, err := resolveModel(id, yamlModel)
		if err != nil {
			return nil, NewLoadError("providers.yaml", err)
		}
		models[id] = resolved
	}

	// 4. Resolve defaults (YAML overrides built-in)
	defaults := builtinDefaults()
	if quorumConfig.Defaults != nil {
		if err := mergo.Merge(defaults, quorumConfig.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	// 5. Resolve queue config (merge user YAML into built-in defaults so
	// unset values keep their defaults)
	queueConfig := DefaultQueueConfig()
	if quorumConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, quorumConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// 6. Resolve retention config the same way
	retentionConfig := DefaultRetentionConfig()
	if quorumConfig.Retention != nil {
		if err := mergo.Merge(retentionConfig, quorumConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir: configDir,
		Defaults:  defaults,
		Queue:     queueConfig,
		Retention: retentionConfig,
		System:    resolveSystemConfig(quorumConfig.System),
		Models:    NewModelRegistry(models),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing the YAML parser to handle the content (or fail with a clearer
	// error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadQuorumYAML() (*QuorumYAMLConfig, error) {
	var config QuorumYAMLConfig
	if err := l.loadYAML("quorum.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (l *configLoader) loadProvidersYAML() (map[string]ModelYAMLConfig, error) {
	var config ProvidersYAMLConfig
	config.Models = make(map[string]ModelYAMLConfig)

	err := l.loadYAML("providers.yaml", &config)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return config.Models, nil
}

// resolveModel converts one YAML model entry into a resolved ModelConfig,
// parsing duration strings and layering the entry over the resilience
// defaults.
func resolveModel(id string, y ModelYAMLConfig) (*ModelConfig, error) {
	m := &ModelConfig{
		Provider:   ProviderType(y.Provider),
		Model:      y.Model,
		APIKeyEnv:  y.APIKeyEnv,
		BaseURL:    y.BaseURL,
		Priority:   y.Priority,
		Resilience: resilience.DefaultProviderConfig(),
	}

	var err error
	if m.Timeout, err = parseOptionalDuration(id, "timeout", y.Timeout); err != nil {
		return nil, err
	}

	if r := y.Retry; r != nil {
		if r.MaxAttempts > 0 {
			m.Resilience.Retry.MaxAttempts = r.MaxAttempts
		}
		if r.Multiplier > 0 {
			m.Resilience.Retry.Multiplier = r.Multiplier
		}
		if r.JitterFraction > 0 {
			m.Resilience.Retry.JitterFraction = r.JitterFraction
		}
		if d, err := parseOptionalDuration(id, "retry.initial_delay", r.InitialDelay); err != nil {
			return nil, err
		} else if d > 0 {
			m.Resilience.Retry.InitialDelay = d
		}
		if d, err := parseOptionalDuration(id, "retry.max_delay", r.MaxDelay); err != nil {
			return nil, err
		} else if d > 0 {
			m.Resilience.Retry.MaxDelay = d
		}
	}

	if b := y.Breaker; b != nil {
		if b.Threshold > 0 {
			m.Resilience.Breaker.Threshold = b.Threshold
		}
		if d, err := parseOptionalDuration(id, "circuit_breaker.recovery_timeout", b.RecoveryTimeout); err != nil {
			return nil, err
		} else if d > 0 {
			m.Resilience.Breaker.RecoveryTimeout = d
		}
	}

	if rl := y.RateLimit; rl != nil {
		if rl.EventsPerSecond > 0 {
			m.Resilience.RateLimit.EventsPerSecond = rl.EventsPerSecond
		}
		if rl.Burst > 0 {
			m.Resilience.RateLimit.Burst = rl.Burst
		}
		if rl.Mode != "" {
			m.Resilience.RateLimit.Mode = resilience.RateLimitMode(rl.Mode)
		}
		if d, err := parseOptionalDuration(id, "rate_limit.max_wait", rl.MaxWait); err != nil {
			return nil, err
		} else if d > 0 {
			m.Resilience.RateLimit.MaxWait = d
		}
	}

	return m, nil
}

// parseOptionalDuration parses a duration string, treating "" as zero.
func parseOptionalDuration(modelID, field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, NewValidationError("model", modelID, field, fmt.Errorf("%w: %q", ErrInvalidValue, value))
	}
	return d, nil
}

// resolveSystemConfig resolves system settings from YAML, applying defaults.
func resolveSystemConfig(sys *SystemYAMLConfig) *SystemConfig {
	cfg := &SystemConfig{
		DashboardURL: "http://localhost:5173",
	}
	if sys == nil {
		return cfg
	}
	if sys.DashboardURL != "" {
		cfg.DashboardURL = sys.DashboardURL
	}
	cfg.AllowedWSOrigins = sys.AllowedWSOrigins
	return cfg
}
