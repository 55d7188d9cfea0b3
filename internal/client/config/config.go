// Package config loads client settings from an optional YAML file and
// GOPHCOLLAB_* environment variables. Command-line flags are applied on top
// of the result in cmd/client.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName = "gophcollab"

	DefaultServer         = "http://localhost:8080"
	DefaultCursorThrottle = 40 * time.Millisecond
	DefaultMaxElapsed     = 5 * time.Minute
)

// Reconnect описывает политику переподключения транспорта.
type Reconnect struct {
	MaxElapsed time.Duration `yaml:"max_elapsed"`
}

// Config is the resolved client configuration.
type Config struct {
	Server         string        `yaml:"server"`
	DB             string        `yaml:"db"`
	Name           string        `yaml:"name"`
	Workspace      string        `yaml:"workspace"`
	LogLevel       string        `yaml:"log_level"`
	Reconnect      Reconnect     `yaml:"reconnect"`
	CursorThrottle time.Duration `yaml:"cursor_throttle"`
}

// Default returns the configuration used when nothing else is specified.
func Default() *Config {
	return &Config{
		Server:         DefaultServer,
		DB:             filepath.Join(UserConfigDir(), "client.db"),
		LogLevel:       "info",
		CursorThrottle: DefaultCursorThrottle,
		Reconnect:      Reconnect{MaxElapsed: DefaultMaxElapsed},
	}
}

// UserConfigDir returns $XDG_CONFIG_HOME/gophcollab or ~/.config/gophcollab.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", appName)
}

// DefaultPath is the config file consulted when no -config flag is given.
func DefaultPath() string {
	return filepath.Join(UserConfigDir(), "config.yaml")
}

// Load reads path on top of Default and then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envBindings сопоставляет переменные окружения полям конфигурации.
var envBindings = map[string]func(*Config, string){
	"GOPHCOLLAB_SERVER":    func(c *Config, v string) { c.Server = v },
	"GOPHCOLLAB_DB":        func(c *Config, v string) { c.DB = v },
	"GOPHCOLLAB_NAME":      func(c *Config, v string) { c.Name = v },
	"GOPHCOLLAB_WORKSPACE": func(c *Config, v string) { c.Workspace = v },
	"GOPHCOLLAB_LOG_LEVEL": func(c *Config, v string) { c.LogLevel = v },
}

// ApplyEnv overrides fields from the environment using lookup
// (os.LookupEnv in production). Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for key, set := range envBindings {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			set(c, strings.TrimSpace(v))
		}
	}
}

// Validate checks the values that cannot be repaired silently.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server) == "" {
		return errors.New("config: server is required")
	}
	if c.CursorThrottle < 0 {
		return fmt.Errorf("config: cursor_throttle must not be negative, got %s", c.CursorThrottle)
	}
	if c.Reconnect.MaxElapsed < 0 {
		return fmt.Errorf("config: reconnect.max_elapsed must not be negative, got %s", c.Reconnect.MaxElapsed)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured level, falling back to Info.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel maps debug/info/warn/error onto slog levels. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", s)
	}
}
