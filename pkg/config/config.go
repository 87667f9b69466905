// Package config loads the cb tool's configuration: the retention budget
// string, the persistent-namespace patterns, and storage directory
// overrides. Configuration is an explicit value passed into constructors,
// never global state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the tool's full configuration.
type Config struct {
	// History is the retention budget string, e.g. "500mb 30d 100".
	History string `yaml:"history"`
	// PersistPatterns are glob patterns; clipboards whose names match are
	// stored in the persistent namespace.
	PersistPatterns []string `yaml:"persist_patterns"`
	// AlwaysPersist forces every clipboard into the persistent namespace.
	AlwaysPersist bool `yaml:"always_persist"`
	// PersistentDir overrides the persistent storage root.
	PersistentDir string `yaml:"persistent_dir"`
	// TemporaryDir overrides the temporary storage root.
	TemporaryDir string `yaml:"temporary_dir"`

	path string
}

// DefaultPath returns the default config file location, ~/.clipboard/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".clipboard", "config.yaml"), nil
}

// Load reads the config file at path (or the default location when path is
// empty) and applies environment overrides on top. A missing file is not an
// error; the environment alone can configure everything.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg := &Config{path: path}

	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CLIPBOARD_HISTORY"); v != "" {
		c.History = v
	}
	if v := os.Getenv("CLIPBOARD_PERSISTDIR"); v != "" {
		c.PersistentDir = v
	}
	if v := os.Getenv("CLIPBOARD_TMPDIR"); v != "" {
		c.TemporaryDir = v
	}
	if v := os.Getenv("CLIPBOARD_ALWAYS_PERSIST"); v != "" {
		c.AlwaysPersist = true
	}
}

// Path returns the file path this config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to its file atomically.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("config: create config directory: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("config: write temp file: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("config: atomic rename: %w", err)
	}
	return nil
}
