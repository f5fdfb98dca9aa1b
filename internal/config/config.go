package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Config holds everything injected at startup: the listen port, the store
// DSN, the CORS allow-list and the token-signing parameters. Values come
// from an optional YAML file with environment variables taking precedence.
type Config struct {
	Port           string   `yaml:"port"`
	DatabaseURL    string   `yaml:"database_url"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Auth           Auth     `yaml:"auth"`
}

type Auth struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	TokenTTL string `yaml:"token_ttl"`
}

// TTL parses the configured token lifetime, falling back to one hour when
// the value is absent or unparsable.
func (a Auth) TTL() time.Duration {
	d, err := time.ParseDuration(a.TokenTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// Load reads the YAML file at path (if it exists) and applies environment
// overrides. An empty path defaults to "config.yaml".
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}

	cfg := &Config{
		Port: "5050",
		Auth: Auth{Issuer: "lifestream", TokenTTL: "1h"},
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("AUTH_ISSUER"); v != "" {
		cfg.Auth.Issuer = v
	}
	if v := os.Getenv("AUTH_TOKEN_TTL"); v != "" {
		cfg.Auth.TokenTTL = v
	}

	if cfg.Auth.Secret == "" {
		return nil, errors.New("auth secret is not configured (set auth.secret or AUTH_SECRET)")
	}

	return cfg, nil
}
