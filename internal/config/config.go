// Package config handles the configuration directory and config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "ftask"

	// ConfigFile is the optional per-user configuration filename.
	ConfigFile = "config.yaml"

	// DefaultTasksFile is the persistence target filename used when
	// config.yaml does not override it.
	DefaultTasksFile = "tasks.csv"
)

// fileConfig models config.yaml.
type fileConfig struct {
	// TasksFile overrides the persistence target. Relative paths are
	// resolved against the config directory.
	TasksFile string `yaml:"tasks_file"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// TasksFile is the persistence target override from config.yaml.
	// Empty means use DefaultTasksFile under Dir.
	TasksFile string

	// Debug enables debug output to stderr.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified config directory and
// applies config.yaml if present. A missing config.yaml is not an error.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func (c *Config) loadFile() error {
	data, err := os.ReadFile(filepath.Join(c.Dir, ConfigFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", ConfigFile, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", ConfigFile, err)
	}
	c.TasksFile = fc.TasksFile
	return nil
}

// TasksPath returns the persistence target path.
func (c *Config) TasksPath() string {
	if c.TasksFile != "" {
		if filepath.IsAbs(c.TasksFile) {
			return c.TasksFile
		}
		return filepath.Join(c.Dir, c.TasksFile)
	}
	return filepath.Join(c.Dir, DefaultTasksFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
