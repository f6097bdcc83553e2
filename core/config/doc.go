// Package config provides configuration management for the path cache node.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, node name)
//   - Log: Logging level and format
//   - World: world size and sector size
//   - Nav: pathfinder step size, proximity threshold and iteration limits
//   - Store: hot cache size, approximate match radius, data directory
//   - Sync: peer URLs and sync interval
//   - Database: MySQL connection for the optional locations table
//   - Storage: S3/MinIO credentials for snapshot publication
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
