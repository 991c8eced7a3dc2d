package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Google struct {
		ClientId     string `yaml:"clientId"`
		ClientSecret string `yaml:"clientSecret"`
		RedirectURL  string `yaml:"redirectUrl"`
	} `yaml:"google"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`

	Frontend struct {
		URL string `yaml:"url"`
	} `yaml:"frontend"`

	Celebrity struct {
		Endpoint string `yaml:"endpoint"`
		CacheTTL string `yaml:"cacheTtl"`
	} `yaml:"celebrity"`
}

// CelebrityCacheTTL parses the configured cache duration, defaulting to 24h.
func (c *Config) CelebrityCacheTTL() time.Duration {
	if d, err := time.ParseDuration(c.Celebrity.CacheTTL); err == nil && d > 0 {
		return d
	}
	return 24 * time.Hour
}

// LoadConfig reads the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Celebrity.Endpoint == "" {
		cfg.Celebrity.Endpoint = "https://fr.wikipedia.org/w/api.php"
	}

	return &cfg, nil
}

// Path returns the config file location, overridable through CONFIG_PATH.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "./config/config.yml"
}
