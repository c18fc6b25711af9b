package config

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/quorum-ai/quorum/pkg/resilience"
)

// ProviderType identifies the upstream provider family a model belongs to.
type ProviderType string

const (
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderGoogle    ProviderType = "google"
	ProviderCustom    ProviderType = "custom"
)

// knownProviderTypes lists the accepted provider type values.
var knownProviderTypes = map[ProviderType]bool{
	ProviderOpenAI:    true,
	ProviderAnthropic: true,
	ProviderGoogle:    true,
	ProviderCustom:    true,
}

// ModelConfig is the resolved configuration for one candidate model:
// identity, synthesis priority, and the full resilience tuning the adapter
// applies to its calls.
type ModelConfig struct {
	// Provider type (required)
	Provider ProviderType

	// Upstream model name (required)
	Model string

	// Environment variable holding the API key
	APIKeyEnv string

	// Optional custom endpoint/base URL
	BaseURL string

	// Priority orders synthesis model selection; higher wins
	Priority int

	// Timeout bounds a single call to this model
	Timeout time.Duration

	// Resilience tuning for this model's calls
	Resilience resilience.ProviderConfig
}

// ModelRegistry stores model configurations in memory with thread-safe access
type ModelRegistry struct {
	models map[string]*ModelConfig
	mu     sync.RWMutex
}

// NewModelRegistry creates a new model registry
func NewModelRegistry(models map[string]*ModelConfig) *ModelRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ModelConfig, len(models))
	for k, v := range models {
		copied[k] = v
	}
	return &ModelRegistry{models: copied}
}

// Get retrieves a model configuration by id (thread-safe)
func (r *ModelRegistry) Get(modelID string) (*ModelConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, exists := r.models[modelID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelID)
	}
	return model, nil
}

// GetAll returns all model configurations (thread-safe, returns copy)
func (r *ModelRegistry) GetAll() map[string]*ModelConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ModelConfig, len(r.models))
	for k, v := range r.models {
		result[k] = v
	}
	return result
}

// Has checks if a model exists in the registry (thread-safe)
func (r *ModelRegistry) Has(modelID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.models[modelID]
	return exists
}

// Len returns the number of models in the registry (thread-safe)
func (r *ModelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}

// ModelIDs returns a sorted list of all configured model ids.
func (r *ModelRegistry) ModelIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Priority returns the synthesis priority for a model; unknown models rank 0.
func (r *ModelRegistry) Priority(modelID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if m, ok := r.models[modelID]; ok {
		return m.Priority
	}
	return 0
}

// Timeout returns the per-call timeout for a model; zero means the adapter
// default applies.
func (r *ModelRegistry) Timeout(modelID string) time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if m, ok := r.models[modelID]; ok {
		return m.Timeout
	}
	return 0
}

// ResilienceConfigs returns the per-model resilience tuning, keyed by model
// id, in the shape the resilience registry is seeded with.
func (r *ModelRegistry) ResilienceConfigs() map[string]resilience.ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]resilience.ProviderConfig, len(r.models))
	for id, m := range r.models {
		out[id] = m.Resilience
	}
	return out
}
