package config

import (
	"os"
	"path/filepath"
	"strconv"

	"clipstash/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Config holds the optional clipstash configuration. Everything has a
// sensible default; a missing config file is not an error.
type Config struct {
	Store   StoreConfig   `yaml:"store,omitempty"`
	History HistoryConfig `yaml:"history,omitempty"`
}

type StoreConfig struct {
	Path string `yaml:"path,omitempty"`
}

type HistoryConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// Load reads the config file from the default location and applies
// environment overrides.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "clipstash", "config.yaml"), nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.FileError("failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.FileError("failed to write config file", err)
	}

	return nil
}

// StorePath returns the configured store file, falling back to the default
// location under the user config directory.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	return filepath.Join(configDir, "clipstash", "clipboard.json")
}

// HistoryEnabled reports whether operation history should be recorded.
// Defaults to on.
func (c *Config) HistoryEnabled() bool {
	if c.History.Enabled == nil {
		return true
	}
	return *c.History.Enabled
}

// HistoryPath returns the configured history database, falling back to the
// default location under the user cache directory.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "clipstash", "history.db")
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path.
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// File doesn't exist, that's okay - defaults apply.
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.FileError("failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to the
// config.
func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("CLIPSTASH_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("CLIPSTASH_HISTORY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.History.Enabled = &enabled
		}
	}
	if v := os.Getenv("CLIPSTASH_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}
}
