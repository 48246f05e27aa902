package config

import (
	"os"
	"strconv"

	"opsdiag/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Export   ExportConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// ExportConfig holds workbook export settings
type ExportConfig struct {
	Dir string
	// MaxRows caps one export sheet; 0 means unlimited.
	MaxRows int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "exports"),
		},
	}

	if maxRows := os.Getenv("EXPORT_MAX_ROWS"); maxRows != "" {
		n, err := strconv.Atoi(maxRows)
		if err != nil {
			return nil, errors.ConfigInvalid("EXPORT_MAX_ROWS must be an integer")
		}
		config.Export.MaxRows = n
	}

	// DATABASE_URL is optional: without it the server keeps history in
	// memory only.
	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
