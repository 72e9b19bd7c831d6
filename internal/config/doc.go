// Package config provides configuration management for artic-table.
//
// This package handles:
//   - Default configuration values
//   - Loading and saving settings from JSON or YAML files
//   - ARTIC_* environment overrides, with .env support
//   - Validation
//   - Conversion to artic.GatherConfig for the gatherer
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads https://api.artic.edu/api/v1
//	// 12 rows per page, wave gathers of 100-record pages
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
//	config.LoadDotEnv()           // .env in the working directory, if present
//	err := settings.ApplyEnv()    // ARTIC_PAGE_SIZE=20 etc.
//	err = settings.Validate()
//
// # Configuration Options
//
// Settings includes options for:
//   - Upstream base URL, requested fields and User-Agent
//   - Display page size and bulk gather strategy, batch size and concurrency
//   - Request timeout
//   - Logging level and TUI log file
//   - HTTP server address and CORS origins
package config
