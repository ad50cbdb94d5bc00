// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonathan/cv-builder/internal/logger"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. CVB_SERVER_PORT
const EnvPrefix = "CVB"

// Config aggregates settings sourced from an optional config file and the environment.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Client    ClientConfig    `mapstructure:"client"`
	Log       logger.Config   `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	BaseURL         string        `mapstructure:"base_url"` // public origin used in share links
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ClientConfig configures outbound calls made by the panels.
type ClientConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig bounds requests per client to the AI and export endpoints.
type RateLimitConfig struct {
	Enabled                 bool `mapstructure:"enabled"`
	AIRequestsPerMinute     int  `mapstructure:"ai_requests_per_minute"`
	AIBurst                 int  `mapstructure:"ai_burst"`
	ExportRequestsPerMinute int  `mapstructure:"export_requests_per_minute"`
	ExportBurst             int  `mapstructure:"export_burst"`
}

// Load reads configuration from path (optional; json, yaml or toml) overlaid with
// CVB_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// defaults always validate
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("client.endpoint", "http://localhost:8080")
	v.SetDefault("client.timeout", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.time_format", "")
	v.SetDefault("log.report_caller", false)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.ai_requests_per_minute", 20)
	v.SetDefault("rate_limit.ai_burst", 5)
	v.SetDefault("rate_limit.export_requests_per_minute", 30)
	v.SetDefault("rate_limit.export_burst", 10)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535, got %d", c.Server.Port)
	}
	if err := checkURL("server.base_url", c.Server.BaseURL); err != nil {
		return err
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.New("config error: 'server.shutdown_timeout' must be non-negative")
	}
	if err := checkURL("client.endpoint", c.Client.Endpoint); err != nil {
		return err
	}
	if c.Client.Timeout <= 0 {
		return errors.New("config error: 'client.timeout' must be positive")
	}
	if c.Log.Format != "json" && c.Log.Format != "pretty" {
		return fmt.Errorf("config error: 'log.format' must be json or pretty, got %q", c.Log.Format)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.AIRequestsPerMinute <= 0 || c.RateLimit.AIBurst <= 0 {
			return errors.New("config error: AI rate limit and burst must be positive")
		}
		if c.RateLimit.ExportRequestsPerMinute <= 0 || c.RateLimit.ExportBurst <= 0 {
			return errors.New("config error: export rate limit and burst must be positive")
		}
	}
	return nil
}

// PublicURL parses the server's public base URL
func (c *Config) PublicURL() (*url.URL, error) {
	return url.Parse(c.Server.BaseURL)
}

func checkURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config error: '%s' must be an absolute http(s) URL, got %q", key, raw)
	}
	return nil
}
