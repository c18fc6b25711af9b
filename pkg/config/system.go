package config

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// DashboardURL is the base URL of the dashboard frontend, used for CORS.
	DashboardURL string

	// AllowedWSOrigins lists additional WebSocket origin patterns beyond
	// the dashboard URL.
	AllowedWSOrigins []string
}
