package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration at ~/.guestjot/config.yaml.
// AuthToken doubles as the session marker: a non-empty token means the
// account is signed in.
type Config struct {
	StoragePath  string `yaml:"storage_path,omitempty"`
	BackendURL   string `yaml:"backend_url,omitempty"`
	AuthToken    string `yaml:"auth_token,omitempty"`
	AccountEmail string `yaml:"account_email,omitempty"`
}

// DefaultConfigDir returns the guestjot config directory
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".guestjot"), nil
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultStoragePath returns the default pending action database path
func DefaultStoragePath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pending.db"), nil
}

// LoadConfig loads the config file. A missing file is not an error and
// yields a zero config, so first runs work without setup.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Op: "read", Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Op: "parse", Err: err}
	}

	return &cfg, nil
}

// Save writes the config file with owner-only permissions, creating the
// config directory as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return &ConfigError{Path: path, Op: "write", Err: err}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return &ConfigError{Path: path, Op: "write", Err: err}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return &ConfigError{Path: path, Op: "write", Err: err}
	}
	return nil
}

// ResolveStoragePath picks the database path: explicit flag, then config,
// then default.
func ResolveStoragePath(flagValue string, cfg *Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg != nil && cfg.StoragePath != "" {
		return cfg.StoragePath, nil
	}
	return DefaultStoragePath()
}
