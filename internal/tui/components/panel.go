package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"clashview/internal/tui/design"
	"clashview/internal/tui/utils"
)

// Panel is the titled, bordered container around a dashboard section.
// The border switches to the focused style while the section holds the
// user's attention (for the proxy pane: while it is expanded).
type Panel struct {
	Title   string
	Content string
	Width   int
	Height  int
	Focused bool

	styles *design.Styles
}

// NewPanel creates a panel with default dimensions.
func NewPanel(title string, styles *design.Styles) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		styles: styles,
	}
}

// WithContent sets the panel content.
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the outer panel dimensions.
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// SetFocused updates the focus state.
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// InnerSize returns the usable content area of the panel.
func (p *Panel) InnerSize() (width, height int) {
	style := p.borderStyle()
	width = p.clampedWidth() - style.GetHorizontalFrameSize()
	height = p.clampedHeight() - style.GetVerticalFrameSize()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// Render returns the styled panel.
func (p *Panel) Render() string {
	style := p.borderStyle()
	innerWidth, innerHeight := p.InnerSize()

	var lines []string
	if p.Title != "" {
		title := utils.TruncateString(p.Title, innerWidth)
		lines = append(lines, p.styles.GroupName.Render(title))
	}

	if p.Content != "" {
		for _, line := range strings.Split(p.Content, "\n") {
			if lipgloss.Width(line) > innerWidth {
				line = utils.TruncateString(line, innerWidth)
			}
			lines = append(lines, line)
		}
	}

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	return style.
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) borderStyle() lipgloss.Style {
	if p.Focused {
		return p.styles.FocusedBorder
	}
	return p.styles.PlainBorder
}

func (p *Panel) clampedWidth() int {
	if p.Width < design.MinPanelWidth {
		return design.MinPanelWidth
	}
	return p.Width
}

func (p *Panel) clampedHeight() int {
	if p.Height < design.MinPanelHeight {
		return design.MinPanelHeight
	}
	return p.Height
}
