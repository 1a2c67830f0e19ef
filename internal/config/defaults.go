package config

import "time"

// Default returns the built-in configuration: a local controller on the
// conventional port, a moderate poll cadence, info-level logs.
func Default() Config {
	return Config{
		Controller: ControllerConfig{
			URL: "http://127.0.0.1:9090",
		},
		Poll: PollConfig{
			Interval: 5 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
