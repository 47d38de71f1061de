// Package config handles loading taskdesk.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/taskdesk/taskdesk/internal/kv"
	"github.com/taskdesk/taskdesk/task"
	"github.com/taskdesk/taskdesk/timer"
)

// Config represents the taskdesk.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Server  Server  `toml:"server"`
	Focus   Focus   `toml:"focus"`
	List    List    `toml:"list"`
}

// Storage selects where task data lives.
type Storage struct {
	// Dir is the data directory. Defaults to ~/.local/share/taskdesk.
	Dir string `toml:"dir"`

	// Backend is "file" or "sqlite". Defaults to "file".
	Backend string `toml:"backend"`
}

// Server contains options for the local web dashboard.
type Server struct {
	// Addr is the listen address for `td serve`. Defaults to localhost:8911.
	Addr string `toml:"addr"`
}

// Focus contains focus-session timer durations.
type Focus struct {
	// WorkSeconds is the default work interval when a task has no
	// estimate. Defaults to 1500 (25 minutes).
	WorkSeconds int `toml:"work-seconds"`

	// BreakSeconds is the break interval after a work session.
	// Defaults to 300 (5 minutes).
	BreakSeconds int `toml:"break-seconds"`
}

// List contains defaults for `td list`.
type List struct {
	// Status is the default status filter: "all", "pending", or
	// "completed". Defaults to "all".
	Status string `toml:"status"`
}

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "localhost:8911"

// Load reads configuration from the global config file and applies
// defaults. Returns a usable config even if no config file exists.
func Load() (*Config, error) {
	path, err := globalConfigPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "taskdesk", "config.toml"), nil
}

func loadFrom(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err == nil {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Storage.Dir) == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.Storage.Dir = filepath.Join(homeDir, ".local", "share", "taskdesk")
		}
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = kv.BackendFile
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Focus.WorkSeconds == 0 {
		cfg.Focus.WorkSeconds = timer.DefaultWorkSeconds
	}
	if cfg.Focus.BreakSeconds == 0 {
		cfg.Focus.BreakSeconds = timer.BreakSeconds
	}
	if cfg.List.Status == "" {
		cfg.List.Status = task.FilterAll
	}
}

func validate(cfg *Config) error {
	switch cfg.Storage.Backend {
	case kv.BackendFile, kv.BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Focus.WorkSeconds < 0 {
		return fmt.Errorf("focus work-seconds must not be negative")
	}
	if cfg.Focus.BreakSeconds < 0 {
		return fmt.Errorf("focus break-seconds must not be negative")
	}
	if cfg.List.Status != task.FilterAll && !task.Status(cfg.List.Status).IsValid() {
		return fmt.Errorf("unknown list status %q", cfg.List.Status)
	}
	return nil
}

// OpenStorage opens the configured key-value backend.
func (c *Config) OpenStorage() (kv.Store, error) {
	return kv.Open(c.Storage.Backend, c.Storage.Dir)
}
