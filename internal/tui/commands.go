package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"clashview/internal/model"
	"clashview/pkg/logging"
)

type tickMsg time.Time

type proxiesMsg model.Proxies

type proxiesErrMsg struct{ err error }

type versionMsg string

type appLogMsg logging.Entry

type clashLogMsg model.LogEntry

type logStreamMsg struct{ ch <-chan model.LogEntry }

type logStreamClosedMsg struct{}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchProxies() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		proxies, err := client.Proxies(context.Background())
		if err != nil {
			return proxiesErrMsg{err}
		}
		return proxiesMsg(proxies)
	}
}

func (m Model) fetchVersion() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		v, err := client.Version(context.Background())
		if err != nil {
			return proxiesErrMsg{err}
		}
		return versionMsg(v.Version)
	}
}

// openLogStream connects to the controller's log stream. The stream
// lives for the rest of the process; a broken stream surfaces as
// logStreamClosedMsg and is not reconnected automatically.
func (m Model) openLogStream() tea.Cmd {
	client := m.client
	level := model.LogLevel(m.cfg.Log.Level)
	return func() tea.Msg {
		ch, err := client.StreamLogs(context.Background(), level)
		if err != nil {
			logging.Warn("api", "log stream unavailable: %v", err)
			return nil
		}
		return logStreamMsg{ch}
	}
}

func waitForClashLog(ch <-chan model.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logStreamClosedMsg{}
		}
		return clashLogMsg(entry)
	}
}

func (m Model) waitForAppLog() tea.Cmd {
	ch := m.appLogs
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return appLogMsg(entry)
	}
}
