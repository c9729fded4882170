// Package config loads server configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"ADDR" envDefault:":8080"`

	// DataDir is the directory holding the per-tenant SQLite databases.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// Namespace is the tenant identifier; it selects the database file
	// under DataDir so tenants never share tables.
	Namespace string `env:"NAMESPACE" envDefault:"default"`

	// StaticDir is where the SPA assets live.
	StaticDir string `env:"STATIC_PATH" envDefault:"../frontend/static"`

	// JWTSecret signs session tokens. Must be set outside of dev.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-only-secret"`

	// SessionTTLHours is how long issued session tokens stay valid.
	SessionTTLHours int `env:"SESSION_TTL_HOURS" envDefault:"720"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env files if present (missing files are not an error) and
// parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load(".env", ".env.local")

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config from env: %w", err)
	}
	return c, nil
}
