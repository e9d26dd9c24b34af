// Package config loads container defaults from the environment, so the
// composition root can be tuned per deployment without code changes.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/km-arc/go-inversify/container"
)

// Config is the typed view of the container-related environment.
type Config struct {
	// DefaultScope applies to bindings that don't choose a scope.
	// CONTAINER_DEFAULT_SCOPE: transient | singleton | request
	DefaultScope container.Scope

	// Debug enables resolution logging in apps that mount the logging
	// middleware. CONTAINER_DEBUG: true | false
	Debug bool
}

// Load reads .env (if present) and builds a Config from environment
// variables. An unknown scope name fails with the container package's
// invalid-configuration error.
//
//	cfg, err := config.Load()
//	c := container.New(cfg.Options()...)
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	scope, err := container.ParseScope(env("CONTAINER_DEFAULT_SCOPE", container.ScopeTransient.String()))
	if err != nil {
		return nil, err
	}

	return &Config{
		DefaultScope: scope,
		Debug:        envBool("CONTAINER_DEBUG", false),
	}, nil
}

// Options converts the Config into container construction options.
func (c *Config) Options() []container.Option {
	return []container.Option{
		container.WithDefaultScope(c.DefaultScope),
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
