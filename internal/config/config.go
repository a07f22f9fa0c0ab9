package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Directory DirectoryConfig `mapstructure:"directory"`
	Console   ConsoleConfig   `mapstructure:"console"`
	Log       LogConfig       `mapstructure:"log"`
}

// APIConfig locates the backend. Every request is sent with the
// session cookie jar; there are no automatic retries.
type APIConfig struct {
	BaseURL        string  `mapstructure:"base_url" envconfig:"API_BASE_URL"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" envconfig:"API_TIMEOUT_SECONDS"`
	RateLimit      float64 `mapstructure:"rate_limit" envconfig:"API_RATE_LIMIT"`
	RateBurst      int     `mapstructure:"rate_burst" envconfig:"API_RATE_BURST"`

	// BreakerThreshold is the consecutive transport failures that
	// open the circuit; zero disables the breaker entirely.
	BreakerThreshold       int `mapstructure:"breaker_threshold" envconfig:"API_BREAKER_THRESHOLD"`
	BreakerCooldownSeconds int `mapstructure:"breaker_cooldown_seconds" envconfig:"API_BREAKER_COOLDOWN_SECONDS"`
}

// DirectoryConfig controls the cached user directory that backs the
// assignee dropdowns.
type DirectoryConfig struct {
	CacheTTL        time.Duration `mapstructure:"cache_ttl" envconfig:"DIRECTORY_CACHE_TTL"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" envconfig:"DIRECTORY_CLEANUP_INTERVAL"`
}

type ConsoleConfig struct {
	PageSize int `mapstructure:"page_size" envconfig:"CONSOLE_PAGE_SIZE"`
}

// LogConfig controls logging. The console runs full-screen, so logs
// only appear when a file is configured.
type LogConfig struct {
	Level string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	File  string `mapstructure:"file" envconfig:"LOG_FILE"`
}

// LoadConfig reads config.yaml from the working directory or
// ./config, then applies UREPAIR_* environment overrides. A missing
// config file is fine; defaults cover every field.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.base_url", "https://urepair.me")
	viper.SetDefault("api.timeout_seconds", 30)
	viper.SetDefault("api.rate_limit", 10.0)
	viper.SetDefault("api.rate_burst", 5)
	viper.SetDefault("api.breaker_threshold", 5)
	viper.SetDefault("api.breaker_cooldown_seconds", 30)
	viper.SetDefault("directory.cache_ttl", 5*time.Minute)
	viper.SetDefault("directory.cleanup_interval", 10*time.Minute)
	viper.SetDefault("console.page_size", 10)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("urepair", &config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return &config, nil
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BreakerCooldown returns how long an open circuit waits before
// probing the backend again.
func (c APIConfig) BreakerCooldown() time.Duration {
	return time.Duration(c.BreakerCooldownSeconds) * time.Second
}
