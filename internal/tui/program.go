package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"clashview/internal/api"
	"clashview/internal/config"
	"clashview/pkg/logging"
)

// NewProgram creates the Bubble Tea program for the dashboard.
func NewProgram(cfg config.Config, client *api.Client, appLogs <-chan logging.Entry) *tea.Program {
	m := New(cfg, client, appLogs)
	return tea.NewProgram(m, tea.WithAltScreen())
}
