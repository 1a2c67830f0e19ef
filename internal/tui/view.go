package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"clashview/internal/tui/components"
	"clashview/internal/tui/view"
)

// View composes one dashboard frame: header, proxy panel, optional log
// pane, status bar and help line.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	helpLine := m.helpView.View(m.keys)

	chromeHeight := lipgloss.Height(header) + lipgloss.Height(statusBar) + lipgloss.Height(helpLine)
	proxyHeight := m.height - chromeHeight
	logPane := ""
	if m.showLog && m.height >= minHeightForLogPane {
		logPane = m.renderLogPane()
		proxyHeight -= lipgloss.Height(logPane)
	}
	if proxyHeight < 3 {
		proxyHeight = 3
	}

	proxyPanel := components.NewPanel("Proxies", m.styles).
		WithDimensions(m.width, proxyHeight).
		SetFocused(m.tree.Expanded)
	innerWidth, innerHeight := proxyPanel.InnerSize()
	rows := view.TreeRows(m.tree, innerWidth, innerHeight, m.styles)
	if len(rows) == 0 {
		rows = []string{m.styles.ProxyType.Render("waiting for controller...")}
	}
	proxyPanel.WithContent(strings.Join(rows, "\n"))

	sections := []string{header, proxyPanel.Render()}
	if logPane != "" {
		sections = append(sections, logPane)
	}
	sections = append(sections, statusBar, helpLine)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.styles.GroupName.Render("clashview")
	right := ""
	if m.version != "" {
		right = m.styles.ProxyType.Render("clash " + m.version)
	}
	left := title
	if m.fetching {
		left = m.spin.View() + title
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderStatusBar() string {
	bar := components.NewStatusBar(m.width)
	if m.statusMsg != "" {
		bar.WithMessage(m.statusMsg, m.statusType)
		return bar.Render()
	}

	mode := "collapsed"
	if m.tree.Expanded {
		mode = "expanded"
	}
	bar.WithLeftText(fmt.Sprintf("%d groups · %s", len(m.tree.Groups), mode))
	bar.WithRightText(m.cfg.Controller.URL)
	return bar.Render()
}

func (m Model) renderLogPane() string {
	panel := components.NewPanel("Logs", m.styles).
		WithDimensions(m.width, logPaneHeight)
	panel.WithContent(m.logView.View())
	return panel.Render()
}
