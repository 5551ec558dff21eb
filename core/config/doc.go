// Package config provides configuration management for the sync-actions service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: optional plan database (mysql or sqlite)
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Log: Logging level and format
//   - Sync: product-type sync behaviour (omit empty strings, verification, plan recording)
//
// Environment variables map onto nested keys, e.g. SYNC_OMIT_EMPTY_STRING -> sync.omit_empty_string.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
