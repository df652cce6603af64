// Package config provides configuration loading and validation for the CLI and API server.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment,
// e.g. SKILLGAP_DATABASE_URL or SKILLGAP_CACHE_TTL.
const EnvPrefix = "SKILLGAP"

// Config represents the service configuration. Values come from, in increasing priority,
// built-in defaults, an optional JSON or YAML file and SKILLGAP_* environment variables.
type Config struct {
	// Server
	Host            string        `mapstructure:"host" json:"host,omitempty"`
	Port            int           `mapstructure:"port" json:"port,omitempty"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" json:"shutdown_timeout,omitempty"`

	// Storage
	DatabaseURL string        `mapstructure:"database_url" json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string        `mapstructure:"redis_url" json:"redis_url,omitempty"`       // Redis URL; empty disables the cache
	CacheTTL    time.Duration `mapstructure:"cache_ttl" json:"cache_ttl,omitempty"`

	// Data
	CatalogPath    string `mapstructure:"catalog_path" json:"catalog_path,omitempty"`         // Role catalog JSON; empty uses the embedded catalog
	MarketDataPath string `mapstructure:"market_data_path" json:"market_data_path,omitempty"` // Market table JSON; empty uses the embedded table

	// Logging
	LogLevel  string `mapstructure:"log_level" json:"log_level,omitempty"`   // debug, info, warn, error
	LogFormat string `mapstructure:"log_format" json:"log_format,omitempty"` // json or console
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Host:            "",
		Port:            8080,
		ShutdownTimeout: 10 * time.Second,
		CacheTTL:        10 * time.Minute,
		LogLevel:        "info",
		LogFormat:       "console",
	}
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "console"}
)

// Load builds the configuration. path is optional; when set, the file is read and
// its format is chosen from the extension.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("host", defaults.Host)
	v.SetDefault("port", defaults.Port)
	v.SetDefault("shutdown_timeout", defaults.ShutdownTimeout)
	v.SetDefault("database_url", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("cache_ttl", defaults.CacheTTL)
	v.SetDefault("catalog_path", "")
	v.SetDefault("market_data_path", "")
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvFallbacks(&cfg)
	cfg = cfg.MergeWithDefaults(defaults)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyEnvFallbacks honors the conventional unprefixed variables used by hosting platforms
func applyEnvFallbacks(cfg *Config) {
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config error: 'cache_ttl' must be non-negative")
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("config error: 'shutdown_timeout' must be non-negative")
	}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("config error: 'log_level' must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.LogLevel)
	}
	if !contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("config error: 'log_format' must be one of %s, got %q", strings.Join(validLogFormats, ", "), c.LogFormat)
	}

	// Validate file paths exist (if specified)
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}
	if c.MarketDataPath != "" {
		if _, err := os.Stat(c.MarketDataPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: market data file not found: %s", c.MarketDataPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// CLI flags use it to layer flag values over the loaded configuration.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Host == "" {
		result.Host = defaults.Host
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.MarketDataPath == "" {
		result.MarketDataPath = defaults.MarketDataPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CacheTTL == 0 {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.ShutdownTimeout == 0 {
		result.ShutdownTimeout = defaults.ShutdownTimeout
	}

	return result
}

// Addr returns the host:port listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
