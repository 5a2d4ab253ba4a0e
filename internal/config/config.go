package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		URI          string `yaml:"uri" env:"MONGODB_URI"`
		Name         string `yaml:"name" env:"DATABASE_NAME"`
		QueryTimeout string `yaml:"query_timeout" env:"DB_QUERY_TIMEOUT"`
		ConnTimeout  string `yaml:"conn_timeout" env:"DB_CONN_TIMEOUT"`
	} `yaml:"database"`

	Dataset struct {
		// DefaultYear is used whenever a request omits an explicit year.
		DefaultYear int `yaml:"default_year" env:"DATASET_DEFAULT_YEAR"`
		// MajorThreshold is the minimum share-of-degrees for the major filter.
		MajorThreshold float64 `yaml:"major_threshold" env:"DATASET_MAJOR_THRESHOLD"`
		// TrendStartYear is the default lower bound for program trend queries.
		TrendStartYear int `yaml:"trend_start_year" env:"DATASET_TREND_START_YEAR"`
	} `yaml:"dataset"`

	CORS struct {
		Origins string `yaml:"origins" env:"CORS_ORIGINS"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse YAML into Config structure
		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	err := loadFromEnv(config)
	if err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Database defaults
	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "college_scorecard"
	config.Database.QueryTimeout = "15s"
	config.Database.ConnTimeout = "10s"

	// Dataset defaults. Import batches cover 2015-2023; 2023 is the most
	// recent complete year and is the canonical default everywhere.
	config.Dataset.DefaultYear = 2023
	config.Dataset.MajorThreshold = 0.05
	config.Dataset.TrendStartYear = 2015

	// CORS defaults
	config.CORS.Origins = "http://localhost:3000"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	err := processStructFields(config)
	if err != nil {
		return err
	}

	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Database.URI) == "" {
		return fmt.Errorf("database URI cannot be empty")
	}
	if strings.TrimSpace(config.Database.Name) == "" {
		return fmt.Errorf("database name cannot be empty")
	}
	if config.Dataset.DefaultYear < 1996 {
		return fmt.Errorf("dataset default year %d predates the scorecard dataset", config.Dataset.DefaultYear)
	}
	if config.Dataset.MajorThreshold < 0 || config.Dataset.MajorThreshold > 1 {
		return fmt.Errorf("major threshold must be a fraction between 0 and 1, got %v", config.Dataset.MajorThreshold)
	}
	return nil
}

// CORSOrigins returns the configured origins as a list.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORS.Origins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
