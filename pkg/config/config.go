package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `json:"server"`
	Upstream UpstreamConfig `json:"upstream"`
	Search   SearchConfig   `json:"search"`
	Slider   SliderConfig   `json:"slider"`
	Log      LogConfig      `json:"log"`
}

// ServerConfig for HTTP server settings
type ServerConfig struct {
	Port         string `json:"port"`
	ReadTimeout  int    `json:"read_timeout_seconds"`
	WriteTimeout int    `json:"write_timeout_seconds"`
	StaticDir    string `json:"static_dir"`
}

// UpstreamConfig for the Groupie Trackers API
type UpstreamConfig struct {
	BaseURL        string `json:"base_url"`
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SearchConfig for the search engine. MaxConcurrentFetches bounds the
// in-flight relation fetches during enrichment; 0 means unbounded.
type SearchConfig struct {
	MaxConcurrentFetches int `json:"max_concurrent_fetches"`
}

// SliderConfig for the member-count range slider
type SliderConfig struct {
	MaxMembers int `json:"max_members"`
	MinGap     int `json:"min_gap"`
}

type LogConfig struct {
	Env   string `json:"env"`
	Level string `json:"level"`
}

// Load reads configuration from file and environment variables
// Environment variables override file values using the pattern GROUPIE_SECTION_KEY
func Load(configPath string) (*Config, error) {
	config := &Config{}

	// Load from file if it exists
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(config)

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = 30
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = 60
	}
	if config.Server.StaticDir == "" {
		config.Server.StaticDir = "./static"
	}
	if config.Upstream.BaseURL == "" {
		config.Upstream.BaseURL = "https://groupietrackers.herokuapp.com/api"
	}
	if config.Upstream.UserAgent == "" {
		config.Upstream.UserAgent = "GroupieTracker/1.0"
	}
	if config.Upstream.TimeoutSeconds == 0 {
		config.Upstream.TimeoutSeconds = 10
	}
	if config.Slider.MaxMembers == 0 {
		config.Slider.MaxMembers = 8
	}
	if config.Log.Env == "" {
		config.Log.Env = "development"
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
}

func applyEnvOverrides(config *Config) error {
	// Server overrides
	if v := os.Getenv("GROUPIE_SERVER_PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("GROUPIE_SERVER_STATIC_DIR"); v != "" {
		config.Server.StaticDir = v
	}

	// Upstream overrides
	if v := os.Getenv("GROUPIE_UPSTREAM_BASE_URL"); v != "" {
		config.Upstream.BaseURL = v
	}
	if v := os.Getenv("GROUPIE_UPSTREAM_USER_AGENT"); v != "" {
		config.Upstream.UserAgent = v
	}
	if err := envInt("GROUPIE_UPSTREAM_TIMEOUT_SECONDS", &config.Upstream.TimeoutSeconds); err != nil {
		return err
	}

	// Search and slider overrides
	if err := envInt("GROUPIE_SEARCH_MAX_CONCURRENT_FETCHES", &config.Search.MaxConcurrentFetches); err != nil {
		return err
	}
	if err := envInt("GROUPIE_SLIDER_MAX_MEMBERS", &config.Slider.MaxMembers); err != nil {
		return err
	}
	if err := envInt("GROUPIE_SLIDER_MIN_GAP", &config.Slider.MinGap); err != nil {
		return err
	}

	// Logging overrides
	if v := os.Getenv("GROUPIE_LOG_ENV"); v != "" {
		config.Log.Env = v
	}
	if v := os.Getenv("GROUPIE_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}

	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

// UpstreamTimeout returns the upstream request timeout as a duration
func (c *UpstreamConfig) UpstreamTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks that the loaded values can run the server
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Upstream,
		validation.Field(&c.Upstream.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Upstream.TimeoutSeconds, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("upstream: %w", err)
	}

	if err := validation.ValidateStruct(&c.Slider,
		validation.Field(&c.Slider.MaxMembers, validation.Min(1)),
		validation.Field(&c.Slider.MinGap, validation.Min(0), validation.Max(c.Slider.MaxMembers)),
	); err != nil {
		return fmt.Errorf("slider: %w", err)
	}

	if err := validation.ValidateStruct(&c.Search,
		validation.Field(&c.Search.MaxConcurrentFetches, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	return nil
}
