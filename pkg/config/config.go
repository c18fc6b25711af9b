package config

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide pipeline defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Data retention policy
	Retention *RetentionConfig

	// System infrastructure settings
	System *SystemConfig

	// Candidate model registry
	Models *ModelRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Models int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Models != nil {
		s.Models = c.Models.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetModel retrieves a model configuration by id.
// This is a convenience method that wraps Models.Get().
func (c *Config) GetModel(modelID string) (*ModelConfig, error) {
	return c.Models.Get(modelID)
}
