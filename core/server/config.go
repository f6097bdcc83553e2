package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API; empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// NodeName identifies this peer in logs and sync requests.
	NodeName string `mapstructure:"node_name" default:"node-1"`
}

// SyncConfig holds configuration for peer synchronization.
type SyncConfig struct {
	// Peers is a comma separated list of peer base URLs
	// (e.g. "http://node-2:8080,http://node-3:8080"). Empty disables the
	// background sync loop.
	Peers string `mapstructure:"peers" default:""`
	// IntervalSeconds is the period of the background checksum comparison.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"60"`
	// TimeoutSeconds is the per-request timeout for peer HTTP calls.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// WithDefaults fills zero values so the loop can run from a partial config.
func (c SyncConfig) WithDefaults() SyncConfig {
	if c.IntervalSeconds <= 0 {
		c.IntervalSeconds = 60
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	return c
}
