// Package config provides configuration management for the Hideout Tracker.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: local store settings (driver, sqlite path or MySQL connection details)
//   - Catalog: remote catalog provider endpoint and timeout
//   - Legacy: legacy profile blob path for the one-time migration
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
