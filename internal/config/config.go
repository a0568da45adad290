package config

import (
	"os"
	"strconv"

	"covidlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds data loading settings
type DataConfig struct {
	File        string // CSV or XLSX source file
	NotesFile   string // optional markdown methodology notes
	GroupCutoff int    // max distinct values a column may have to be group-by eligible
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			File:        os.Getenv("DATA_FILE"),
			NotesFile:   getEnvOrDefault("NOTES_FILE", ""),
			GroupCutoff: getEnvIntOrDefault("GROUP_CUTOFF", 11),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(c *Config) error {
	if c.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE is required")
	}
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if c.Data.GroupCutoff < 2 {
		return errors.ConfigInvalid("GROUP_CUTOFF must be at least 2")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
