package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/clashview"
	configFileName = "config.yaml"
)

// ErrBadInterval indicates a non-positive poll interval in the config.
var ErrBadInterval = errors.New("poll interval must be positive")

// Load layers the user config file over the defaults. A missing file is
// fine; a file that exists but does not parse is an error.
func Load() (Config, error) {
	cfg := Default()

	path, err := getUserConfigPath()
	if err != nil {
		// User config is optional; fall through with defaults.
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	overlay, err := loadFromFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("loading config from %s: %w", path, err)
	}
	cfg = merge(cfg, overlay)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants a loaded or flag-amended config must hold.
func (c Config) Validate() error {
	if c.Poll.Interval <= 0 {
		return ErrBadInterval
	}
	return nil
}

var getUserConfigPath = func() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

func loadFromFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// merge overlays non-zero fields of overlay onto base.
func merge(base, overlay Config) Config {
	if overlay.Controller.URL != "" {
		base.Controller.URL = overlay.Controller.URL
	}
	if overlay.Controller.Secret != "" {
		base.Controller.Secret = overlay.Controller.Secret
	}
	if overlay.Poll.Interval != 0 {
		base.Poll.Interval = overlay.Poll.Interval
	}
	if overlay.Log.Level != "" {
		base.Log.Level = overlay.Log.Level
	}
	return base
}
