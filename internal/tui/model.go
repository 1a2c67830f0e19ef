// Package tui is the bubbletea application around the proxy tree: it
// owns the live tree, schedules snapshot polls, applies navigation keys
// and composes the dashboard frame. All tree access happens inside the
// program's single event loop, so merges are atomic from the renderer's
// point of view.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"

	"clashview/internal/api"
	"clashview/internal/config"
	"clashview/internal/model"
	"clashview/internal/proxytree"
	"clashview/internal/tui/components"
	"clashview/internal/tui/design"
	"clashview/pkg/logging"
)

const (
	// logPaneHeight is the height of the log pane when it is shown.
	logPaneHeight = 8
	// minHeightForLogPane is the minimum terminal height at which the log
	// pane may be shown at all.
	minHeightForLogPane = 20
	// maxLogLines bounds the in-memory log scrollback.
	maxLogLines = 500
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	cfg    config.Config
	client *api.Client
	styles *design.Styles

	keys     KeyMap
	helpView help.Model
	spin     spinner.Model

	// tree is the live, cursor-bearing proxy tree. Replaced only through
	// Merge; keyboard handlers mutate its cursor fields directly.
	tree *proxytree.Tree

	logView   viewport.Model
	logLines  []string
	appLogs   <-chan logging.Entry
	clashLogs <-chan model.LogEntry

	width, height int
	fetching      bool
	version       string

	statusMsg  string
	statusType components.MessageType

	showHelp bool
	showLog  bool
}

// New builds the initial model. appLogs is the channel handed out by
// logging.InitForTUI; it may be nil in tests.
func New(cfg config.Config, client *api.Client, appLogs <-chan logging.Entry) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = design.Default().Indicator

	return Model{
		cfg:      cfg,
		client:   client,
		styles:   design.Default(),
		keys:     DefaultKeyMap(),
		helpView: help.New(),
		spin:     sp,
		tree:     &proxytree.Tree{},
		appLogs:  appLogs,
	}
}

// Tree exposes the live tree for tests.
func (m Model) Tree() *proxytree.Tree {
	return m.tree
}

func (m *Model) pushLogLine(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
	m.logView.SetContent(strings.Join(m.logLines, "\n"))
	m.logView.GotoBottom()
}
