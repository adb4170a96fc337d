package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Collaborator API
	APIBaseURL          string `yaml:"api_base_url" validate:"required,url"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds" validate:"min=1"`

	// Ops surface
	ServerAddress string `yaml:"server_address" validate:"required"`
	Environment   string `yaml:"environment" validate:"oneof=development staging production"`

	// Logging
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// View tunables, hot-reloadable through the watcher
	View ViewConfig `yaml:"view"`
}

// ViewConfig holds the runtime-changeable view tunables
type ViewConfig struct {
	DefaultPageSize int   `yaml:"default_page_size" validate:"min=1"`
	PageSizeOptions []int `yaml:"page_size_options" validate:"min=1,dive,min=1"`
}

// FetchTimeout returns the collaborator request timeout
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:          "http://localhost:8080",
		FetchTimeoutSeconds: 10,
		ServerAddress:       ":9090",
		Environment:         "development",
		LogLevel:            "info",
		View: ViewConfig{
			DefaultPageSize: 10,
			PageSizeOptions: []int{5, 10, 20, 50},
		},
	}
}

// LoadConfig builds configuration from defaults, an optional YAML file
// and environment overrides, then validates the result
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		case os.IsNotExist(err):
			// missing file means defaults plus env overrides
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.APIBaseURL = getEnv("API_BASE_URL", cfg.APIBaseURL)
	cfg.FetchTimeoutSeconds = getEnvInt("FETCH_TIMEOUT_SECONDS", cfg.FetchTimeoutSeconds)
	cfg.ServerAddress = getEnv("SERVER_ADDRESS", cfg.ServerAddress)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
