// Package config loads application configuration from a YAML file with
// sensible defaults and a few environment variable overrides.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/delvegen/internal/logger"
	"github.com/samdwyer/delvegen/internal/world"
)

// Config holds application-wide configuration settings.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Logging   logger.Config   `yaml:"logging"`
}

// GeneratorConfig holds level generation settings.
type GeneratorConfig struct {
	// Width and Height are the tile dimensions of generated levels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed for random number generation. Used for reproducible level
	// generation. A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Width:  world.DefaultWidth,
			Height: world.DefaultHeight,
			Seed:   0,
		},
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file. A missing file is
// not an error; defaults are returned. Environment variables override
// the logging settings after the file is applied.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return config, err
			}
		} else if err := yaml.Unmarshal(data, config); err != nil {
			return DefaultConfig(), err
		}
	}

	if config.Generator.Width <= 0 {
		config.Generator.Width = world.DefaultWidth
	}
	if config.Generator.Height <= 0 {
		config.Generator.Height = world.DefaultHeight
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies environment variable overrides for the
// logging section.
func applyEnvOverrides(config *Config) {
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.Logging.Level = logLevel
	}
	if consoleFormat := os.Getenv("LOG_CONSOLE_FORMAT"); consoleFormat != "" {
		config.Logging.ConsoleFormat = consoleFormat
	}
	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.Logging.FileEnabled = enabled
		}
	}
	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		config.Logging.FilePath = filePath
	}
}
