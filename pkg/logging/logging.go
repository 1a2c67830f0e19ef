// Package logging routes application logs either to a text handler (CLI
// mode) or to a buffered channel the dashboard drains into its log pane
// (TUI mode), so nothing ever writes to the terminal behind the
// renderer's back.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Level defines the severity of a log entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes Level satisfy fmt.Stringer.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel converts to the stdlib slog level.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Entry is one structured log record as consumed by the TUI log pane.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Subsystem string
	Message   string
	Err       error
}

// String renders the entry the way the log pane displays it.
func (e Entry) String() string {
	s := fmt.Sprintf("%s [%s] %s: %s",
		e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

var (
	defaultLogger *slog.Logger
	tuiChannel    chan Entry
	tuiMode       bool
	filterLevel   Level
)

const tuiChannelBufferSize = 1024

// InitForTUI routes subsequent logs into the returned channel. Call once
// at startup, before the program starts rendering.
func InitForTUI(level Level) <-chan Entry {
	tuiMode = true
	filterLevel = level
	tuiChannel = make(chan Entry, tuiChannelBufferSize)
	return tuiChannel
}

// InitForCLI routes subsequent logs to a slog text handler on output.
func InitForCLI(level Level, output io.Writer) {
	tuiMode = false
	filterLevel = level
	defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level.SlogLevel(),
	}))
	slog.SetDefault(defaultLogger)
}

func log(level Level, subsystem string, err error, format string, args ...any) {
	if level < filterLevel {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	if tuiMode {
		if tuiChannel == nil {
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
			return
		}
		entry := Entry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// Drop rather than block when the pane stops draining.
		select {
		case tuiChannel <- entry:
		default:
		}
		return
	}

	if defaultLogger == nil {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
		return
	}
	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, format string, args ...any) {
	log(LevelDebug, subsystem, nil, format, args...)
}

// Info logs an informational message.
func Info(subsystem string, format string, args ...any) {
	log(LevelInfo, subsystem, nil, format, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, format string, args ...any) {
	log(LevelWarn, subsystem, nil, format, args...)
}

// Error logs an error message with its cause.
func Error(subsystem string, err error, format string, args ...any) {
	log(LevelError, subsystem, err, format, args...)
}

// Close closes the TUI channel. Call on shutdown, after the program has
// stopped draining.
func Close() {
	if tuiChannel != nil {
		close(tuiChannel)
		tuiChannel = nil
	}
}
