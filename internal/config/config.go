package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"provider"`
	Storage struct {
		// Backend is one of "file", "redis", or "memory".
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
	} `yaml:"storage"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Snapshot struct {
		Interval string `yaml:"interval"`
	} `yaml:"snapshot"`
	Log struct {
		Path  string `yaml:"path"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultProviderURL points at the Open Trivia Database.
const DefaultProviderURL = "https://opentdb.com"

// Load reads YAML config from path. A missing file is not an error: the
// client runs fine on defaults, so the zero config is returned instead.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ProviderURL returns the configured provider base URL or the default.
func (c Config) ProviderURL() string {
	if c.Provider.BaseURL != "" {
		return c.Provider.BaseURL
	}
	return DefaultProviderURL
}

// Duration parses a duration string or returns the fallback if empty or invalid.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
