package model

// LogLevel is the severity tag on a streamed controller log line.
type LogLevel string

const (
	LogError   LogLevel = "error"
	LogWarning LogLevel = "warning"
	LogInfo    LogLevel = "info"
	LogDebug   LogLevel = "debug"
)

// LogEntry is one frame of the controller's /logs stream.
type LogEntry struct {
	Type    LogLevel `json:"type"`
	Payload string   `json:"payload"`
}

// Version is the controller's version report, used as a connectivity probe.
type Version struct {
	Version string `json:"version"`
}
