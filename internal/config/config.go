// Package config resolves client settings from a YAML file, a local
// .env file and environment variables, in that order of increasing
// precedence.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for a config file when none is given.
const DefaultPath = "gymbuddy.yaml"

// Config holds the client settings.
type Config struct {
	ServerURL  string `yaml:"server_url"`
	SessionID  string `yaml:"session_id"`
	RedisURL   string `yaml:"redis_url"`
	SessionTTL string `yaml:"session_ttl"`
	Debug      bool   `yaml:"debug"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		ServerURL: "http://localhost:8000",
		SessionID: "default",
	}
}

// Load reads the config file at path (if it exists), merges a .env
// file from the working directory, and applies environment overrides.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file is fine, defaults apply.
	default:
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// .env is optional too.
	_ = godotenv.Load()

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GYMBUDDY_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("GYMBUDDY_SESSION_ID"); v != "" {
		cfg.SessionID = v
	}
	if v := os.Getenv("GYMBUDDY_REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("GYMBUDDY_SESSION_TTL"); v != "" {
		cfg.SessionTTL = v
	}
	if v := os.Getenv("GYMBUDDY_DEBUG"); v == "1" || v == "true" {
		cfg.Debug = true
	}
}
