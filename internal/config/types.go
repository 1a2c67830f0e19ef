package config

import "time"

// Config is the top-level configuration structure for clashview.
type Config struct {
	Controller ControllerConfig `yaml:"controller"`
	Poll       PollConfig       `yaml:"poll"`
	Log        LogConfig        `yaml:"log"`
}

// ControllerConfig locates the Clash external controller.
type ControllerConfig struct {
	// URL is the controller base URL, e.g. "http://127.0.0.1:9090".
	URL string `yaml:"url,omitempty"`
	// Secret is the bearer token, if the controller requires one.
	Secret string `yaml:"secret,omitempty"`
}

// PollConfig controls the snapshot refresh cadence.
type PollConfig struct {
	Interval time.Duration `yaml:"interval,omitempty"`
}

// LogConfig controls application logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}
