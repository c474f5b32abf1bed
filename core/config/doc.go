// Package config provides configuration management for wiring-guard.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
//   - Log: Logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Server: HTTP port and API key for the serve command (SERVER_PORT, SERVER_API_KEY)
//   - Storage: S3/MinIO credentials and bucket for report uploads (STORAGE_*)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
