package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("garbage"))
}

func TestEntryString(t *testing.T) {
	e := Entry{
		Timestamp: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "api",
		Message:   "fetch failed",
		Err:       errors.New("boom"),
	}
	s := e.String()
	assert.Contains(t, s, "15:04:05")
	assert.Contains(t, s, "ERROR")
	assert.Contains(t, s, "api")
	assert.Contains(t, s, "fetch failed")
	assert.Contains(t, s, "boom")
}

func TestTUIModeDeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer Close()

	Info("test", "hello %s", "world")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelInfo, entry.Level)
		assert.Equal(t, "test", entry.Subsystem)
		assert.Equal(t, "hello world", entry.Message)
	default:
		t.Fatal("expected an entry on the TUI channel")
	}
}

func TestTUIModeFiltersBelowLevel(t *testing.T) {
	ch := InitForTUI(LevelWarn)
	defer Close()

	Debug("test", "quiet")
	Info("test", "also quiet")
	Warn("test", "loud")

	var got []Entry
	for {
		select {
		case e := <-ch:
			got = append(got, e)
			continue
		default:
		}
		break
	}
	require.Len(t, got, 1)
	assert.Equal(t, "loud", got[0].Message)
}

func TestCLIModeWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Error("api", errors.New("boom"), "request failed")

	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "api")
}
