// Package design holds the dashboard's visual vocabulary: the adaptive
// color palette and the style table handed to the render functions.
// Nothing in the render path names a color directly; it asks the table
// for a semantic role.
package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Component dimensions.
const (
	MinPanelWidth  = 20
	MinPanelHeight = 3
)

// Color palette with consistent light/dark mode support.
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#5A9FE0",
		Dark:  "#71B7F9",
	}
	ColorSubtle = lipgloss.AdaptiveColor{
		Light: "#9B9B9B",
		Dark:  "#5C5C5C",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#D1D1D1",
		Dark:  "#3C3C3C",
	}
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
)

// Status bar styles.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)
	StatusBarInfoStyle = lipgloss.NewStyle().
				Foreground(ColorInfo).
				Padding(0, 1)
	StatusBarSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Padding(0, 1)
	StatusBarWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Padding(0, 1)
	StatusBarErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Padding(0, 1)
)

// Glyphs are the fixed characters the renderer places in rows. They are
// part of the injected configuration so a different terminal setup can
// swap them without touching layout code.
type Glyphs struct {
	Focused   string // group row holding the tree cursor
	Unfocused string
	Pointer   string // member row holding the group cursor
	Row       string // ordinary expanded member row
	Latency   string // per-member summary dot
	NoLatency string // measured-dead or never-measured marker
	NotProxy  string // member that is itself a group
}

// Styles is the semantic style table consumed by the render functions.
type Styles struct {
	GroupName lipgloss.Style
	ProxyType lipgloss.Style
	Count     lipgloss.Style

	CurrentProxy lipgloss.Style // backend-reported active member
	PointedProxy lipgloss.Style // member under the group cursor
	PlainProxy   lipgloss.Style

	LatencyNone lipgloss.Style
	LatencyLow  lipgloss.Style
	LatencyMid  lipgloss.Style
	LatencyHigh lipgloss.Style

	Indicator     lipgloss.Style
	FocusedBorder lipgloss.Style
	PlainBorder   lipgloss.Style

	Glyphs Glyphs
}

// Default builds the style table from the package palette.
func Default() *Styles {
	return &Styles{
		GroupName: lipgloss.NewStyle().Foreground(ColorText).Bold(true),
		ProxyType: lipgloss.NewStyle().Foreground(ColorSubtle),
		Count:     lipgloss.NewStyle().Foreground(ColorSuccess),

		CurrentProxy: lipgloss.NewStyle().Foreground(ColorInfo).Bold(true),
		PointedProxy: lipgloss.NewStyle().Foreground(ColorAccent),
		PlainProxy:   lipgloss.NewStyle().Foreground(ColorText),

		LatencyNone: lipgloss.NewStyle().Foreground(ColorSubtle),
		LatencyLow:  lipgloss.NewStyle().Foreground(ColorSuccess),
		LatencyMid:  lipgloss.NewStyle().Foreground(ColorWarning),
		LatencyHigh: lipgloss.NewStyle().Foreground(ColorError),

		Indicator: lipgloss.NewStyle().Foreground(ColorPrimary),
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary),
		PlainBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder),

		Glyphs: Glyphs{
			Focused:   "▶",
			Unfocused: " ",
			Pointer:   "▶",
			Row:       " ",
			Latency:   "●",
			NoLatency: "-",
			NotProxy:  "◉",
		},
	}
}
