package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the guard.
	ApiKey string `mapstructure:"api_key" default:""`
	// SyncIntervalMinutes is the background catalog sync cadence.
	SyncIntervalMinutes int `mapstructure:"sync_interval_minutes" default:"5"`
}

// SyncInterval returns the background sync cadence, falling back to the
// 5 minute default when the configured value is unusable.
func (c Config) SyncInterval() time.Duration {
	if c.SyncIntervalMinutes <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.SyncIntervalMinutes) * time.Minute
}
