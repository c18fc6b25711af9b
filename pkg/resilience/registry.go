package resilience

import "sync"

// ProviderConfig bundles the resilience tuning for one provider.
type ProviderConfig struct {
	Breaker   BreakerConfig
	Retry     RetryConfig
	RateLimit RateLimitConfig
}

// DefaultProviderConfig returns the built-in per-provider defaults.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Breaker:   DefaultBreakerConfig(),
		Retry:     DefaultRetryConfig(),
		RateLimit: DefaultRateLimitConfig(),
	}
}

// providerState pairs the process-lifetime breaker and limiter for one
// provider. No state is shared between different providers.
type providerState struct {
	breaker *Breaker
	limiter *RateLimiter
}

// Registry holds the shared per-provider breakers and rate limiters. It is
// constructed once at startup and injected into the adapters — never
// accessed as ambient global state, so tests stay isolated.
type Registry struct {
	mu       sync.Mutex
	configs  map[string]ProviderConfig
	provider map[string]*providerState
}

// NewRegistry creates a registry seeded with per-provider configs. Providers
// absent from configs get DefaultProviderConfig on first use.
func NewRegistry(configs map[string]ProviderConfig) *Registry {
	copied := make(map[string]ProviderConfig, len(configs))
	for k, v := range configs {
		copied[k] = v
	}
	return &Registry{
		configs:  copied,
		provider: make(map[string]*providerState),
	}
}

// get returns (creating on first use) the state for a provider.
func (r *Registry) get(providerID string) *providerState {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.provider[providerID]; ok {
		return st
	}
	cfg, ok := r.configs[providerID]
	if !ok {
		cfg = DefaultProviderConfig()
	}
	st := &providerState{
		breaker: NewBreaker(cfg.Breaker),
		limiter: NewRateLimiter(cfg.RateLimit),
	}
	r.provider[providerID] = st
	return st
}

// Breaker returns the shared circuit breaker for a provider.
func (r *Registry) Breaker(providerID string) *Breaker {
	return r.get(providerID).breaker
}

// Limiter returns the shared rate limiter for a provider.
func (r *Registry) Limiter(providerID string) *RateLimiter {
	return r.get(providerID).limiter
}

// RetryConfig returns the retry tuning for a provider.
func (r *Registry) RetryConfig(providerID string) RetryConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cfg, ok := r.configs[providerID]; ok {
		return cfg.Retry
	}
	return DefaultRetryConfig()
}
