package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// StorageConfig selects and configures the snapshot backend.
type StorageConfig struct {
	// Backend is "file" or "postgres".
	Backend     string `yaml:"backend" env:"BACKEND" validate:"required,oneof=file postgres"`
	Path        string `yaml:"path,omitempty" env:"PATH" validate:"required_if=Backend file"`
	PostgresDSN string `yaml:"postgresDSN,omitempty" env:"POSTGRES_DSN" validate:"required_if=Backend postgres"`
}

// ServerConfig configures the HTTP surface started by the serve command.
type ServerConfig struct {
	Addr string `yaml:"addr" env:"ADDR" validate:"required"`
}

// Config represents the application configuration.
type Config struct {
	Storage      StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
	Server       ServerConfig  `yaml:"server" envPrefix:"SERVER_"`
	DefaultRoles []string      `yaml:"defaultRoles,omitempty" env:"DEFAULT_ROLES"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Path:    "schedule-master.json",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		DefaultRoles: []string{"menage", "cuisine", "service"},
	}
}

// Load loads and validates the configuration. It looks for
// schedule_master_config.yaml in the current directory first, then in the
// user's home directory, falling back to defaults when neither exists.
// SCHEDULE_MASTER_* environment variables override file values either way.
func Load() (*Config, error) {
	cfg := Default()

	if configPath, err := findConfigFile(); err == nil {
		loaded, err := LoadFromPath(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "SCHEDULE_MASTER_"}); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromPath loads the configuration from a specific path. Fields absent
// from the file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration struct.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// findConfigFile searches for schedule_master_config.yaml in the current
// directory and the home directory.
func findConfigFile() (string, error) {
	configFileName := "schedule_master_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
