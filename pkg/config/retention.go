package config

import "time"

// RetentionConfig controls background data retention: old terminal runs are
// deleted outright (stage records and model calls cascade), and persisted
// events past their TTL are removed even when their run is kept.
type RetentionConfig struct {
	// RunRetentionDays is how long terminal runs are kept.
	RunRetentionDays int `yaml:"run_retention_days"`

	// EventTTL bounds the lifetime of persisted catchup events. Runs clean
	// their own events shortly after completion; this catches the rest.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the retention pass runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunRetentionDays: 90,
		EventTTL:         24 * time.Hour,
		CleanupInterval:  6 * time.Hour,
	}
}
