package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"clashview/internal/model"
	"clashview/internal/proxytree"
	"clashview/internal/tui/components"
	"clashview/pkg/logging"
)

// Init schedules the first fetch, the poll ticker and the log pumps.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		m.fetchProxies(),
		m.fetchVersion(),
		m.openLogStream(),
		m.waitForAppLog(),
		tickCmd(m.cfg.Poll.Interval),
	)
}

// Update is the single place the live tree is read or written, which
// keeps merges atomic with respect to rendering.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width
		m.logView = viewport.New(msg.Width-2, logPaneHeight-2)
		m.logView.SetContent(strings.Join(m.logLines, "\n"))
		m.logView.GotoBottom()
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.cfg.Poll.Interval)}
		if !m.fetching {
			m.fetching = true
			cmds = append(cmds, m.fetchProxies())
		}
		return m, tea.Batch(cmds...)

	case proxiesMsg:
		m.fetching = false
		next, err := proxytree.FromProxies(model.Proxies(msg))
		if err != nil {
			// Malformed snapshot: reject it, keep the live tree.
			m.setStatus(fmt.Sprintf("bad snapshot: %v", err), components.MessageError)
			logging.Error("proxytree", err, "rejecting snapshot")
			return m, nil
		}
		m.tree.Merge(next)
		m.clearStatus()
		return m, nil

	case proxiesErrMsg:
		m.fetching = false
		m.setStatus(fmt.Sprintf("controller: %v", msg.err), components.MessageError)
		logging.Warn("api", "fetch failed: %v", msg.err)
		return m, nil

	case versionMsg:
		m.version = string(msg)
		return m, nil

	case logStreamMsg:
		m.clashLogs = msg.ch
		return m, waitForClashLog(m.clashLogs)

	case clashLogMsg:
		m.pushLogLine(fmt.Sprintf("[%s] %s", msg.Type, msg.Payload))
		return m, waitForClashLog(m.clashLogs)

	case logStreamClosedMsg:
		m.clashLogs = nil
		m.pushLogLine("[warning] controller log stream closed")
		return m, nil

	case appLogMsg:
		m.pushLogLine(logging.Entry(msg).String())
		return m, m.waitForAppLog()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.tree.Up()

	case key.Matches(msg, m.keys.Down):
		m.tree.Down()

	case key.Matches(msg, m.keys.Toggle):
		m.tree.Toggle()

	case key.Matches(msg, m.keys.Refresh):
		if !m.fetching {
			m.fetching = true
			return m, m.fetchProxies()
		}

	case key.Matches(msg, m.keys.CopyName):
		name := m.tree.SelectedName()
		if name == "" {
			break
		}
		if err := clipboard.WriteAll(name); err != nil {
			m.setStatus(fmt.Sprintf("clipboard: %v", err), components.MessageError)
			break
		}
		m.setStatus(fmt.Sprintf("copied %q", name), components.MessageSuccess)

	case key.Matches(msg, m.keys.ToggleLog):
		m.showLog = !m.showLog

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.helpView.ShowAll = m.showHelp
	}

	return m, nil
}

func (m *Model) setStatus(msg string, msgType components.MessageType) {
	m.statusMsg = msg
	m.statusType = msgType
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
}
