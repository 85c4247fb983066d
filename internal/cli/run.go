// Package cli implements the terminal front end: it binds the coach
// page to stdin/stdout and drives the controller through synthetic
// events.
package cli

import (
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/gymbuddy/gymbuddy/internal/config"
	redisstore "github.com/gymbuddy/gymbuddy/pkg/adapters/redis"
	"github.com/gymbuddy/gymbuddy/pkg/ports"
)

// RunOptions contains all the configuration for the run command.
// Non-zero fields override the config file and environment.
type RunOptions struct {
	ConfigPath string
	ServerURL  string
	SessionID  string
	RedisURL   string
	Fresh      bool
	Debug      bool
	NoBanner   bool
}

// Execute handles the run command: resolve config, set up persistence
// and hand off to the interactive session.
func Execute(opts RunOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}
	if opts.SessionID != "" {
		cfg.SessionID = opts.SessionID
	}
	if opts.RedisURL != "" {
		cfg.RedisURL = opts.RedisURL
	}
	if opts.Debug {
		cfg.Debug = true
	}

	logger := createLogger(cfg.Debug)

	store, err := setupPersistence(cfg)
	if err != nil {
		return err
	}

	if opts.Fresh && store != nil {
		ResetSession(store, cfg.SessionID)
	}

	return RunSession(opts, cfg, store, logger)
}

// setupPersistence builds the session store. Without a Redis URL the
// transcript lives only for the process lifetime, which is fine for a
// single run.
func setupPersistence(cfg config.Config) (ports.SessionStore, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	redisOpts, err := backend.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	var storeOpts []redisstore.Option
	if cfg.SessionTTL != "" {
		ttl, err := time.ParseDuration(cfg.SessionTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid session ttl: %w", err)
		}
		storeOpts = append(storeOpts, redisstore.WithTTL(ttl))
	}

	return redisstore.NewFromClient(backend.NewClient(redisOpts), storeOpts...), nil
}
