package config

import (
	"fmt"
	"net/url"
	"os"
)

// ConfigError is a fatal configuration problem found at startup. The process
// refuses to start rather than limping along without a storage endpoint.
type ConfigError struct {
	Var    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Var, e.Reason)
}

// Config is read once at process start and never re-read.
type Config struct {
	// DatabaseURL selects the backend: postgres:// or postgresql:// for the
	// relational store, file: for the local mirror.
	DatabaseURL *url.URL

	// AuthToken optionally overrides the password of a relational URL.
	AuthToken string

	Port string
}

// Load reads the environment. DATABASE_URL is required; an unparseable value
// or missing variable is a ConfigError.
func Load() (*Config, error) {
	raw := os.Getenv("DATABASE_URL")
	if raw == "" {
		return nil, &ConfigError{Var: "DATABASE_URL", Reason: "is required"}
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, &ConfigError{Var: "DATABASE_URL", Reason: err.Error()}
	}

	switch parsed.Scheme {
	case "postgres", "postgresql", "file":
	default:
		return nil, &ConfigError{
			Var:    "DATABASE_URL",
			Reason: fmt.Sprintf("unsupported scheme %q (want postgres:// or file:)", parsed.Scheme),
		}
	}

	cfg := &Config{
		DatabaseURL: parsed,
		AuthToken:   os.Getenv("DATABASE_AUTH_TOKEN"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.AuthToken != "" && cfg.UseLocalMirror() {
		// A token with a file: endpoint is harmless; the mirror ignores it.
		cfg.AuthToken = ""
	}

	return cfg, nil
}

// UseLocalMirror reports whether the endpoint selects the local mirror
// backend instead of a database service.
func (c *Config) UseLocalMirror() bool {
	return c.DatabaseURL.Scheme == "file"
}

// MirrorPath is the filesystem path of the mirror blob for a file: endpoint.
func (c *Config) MirrorPath() string {
	if c.DatabaseURL.Opaque != "" {
		return c.DatabaseURL.Opaque
	}
	return c.DatabaseURL.Path
}

// DSN is the relational connection string with the auth token applied.
func (c *Config) DSN() string {
	if c.AuthToken == "" {
		return c.DatabaseURL.String()
	}
	dsn := *c.DatabaseURL
	user := ""
	if dsn.User != nil {
		user = dsn.User.Username()
	}
	dsn.User = url.UserPassword(user, c.AuthToken)
	return dsn.String()
}
