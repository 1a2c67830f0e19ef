package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"clashview/internal/tui/design"
	"clashview/internal/tui/utils"
)

// MessageType selects the status bar message style.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// StatusBar is the single-row bar at the bottom of the dashboard. While
// a message is set it replaces the left/right text.
type StatusBar struct {
	Width       int
	Message     string
	MessageType MessageType
	LeftText    string
	RightText   string
}

// NewStatusBar creates a status bar of the given width.
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a transient status message.
func (s *StatusBar) WithMessage(message string, msgType MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	return s
}

// WithLeftText sets the left side text.
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text.
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar.
func (s *StatusBar) Render() string {
	style := s.getStyle()

	var content string
	if s.Message != "" {
		content = s.Message
	} else {
		switch {
		case s.LeftText != "" && s.RightText != "":
			padding := s.Width - lipgloss.Width(s.LeftText) - lipgloss.Width(s.RightText) - 2
			if padding > 0 {
				content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
			} else {
				content = utils.TruncateString(s.LeftText, s.Width-2)
			}
		case s.LeftText != "":
			content = s.LeftText
		default:
			content = s.RightText
		}
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) getStyle() lipgloss.Style {
	if s.Message == "" {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case MessageSuccess:
		return design.StatusBarSuccessStyle
	case MessageWarning:
		return design.StatusBarWarningStyle
	case MessageError:
		return design.StatusBarErrorStyle
	default:
		return design.StatusBarInfoStyle
	}
}
