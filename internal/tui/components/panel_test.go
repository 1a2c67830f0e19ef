package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"clashview/internal/tui/design"
)

func TestPanelRenderEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		content string
	}{
		{
			name:    "zero dimensions",
			width:   0,
			height:  0,
			content: "content",
		},
		{
			name:    "negative dimensions",
			width:   -10,
			height:  -5,
			content: "content",
		},
		{
			name:    "long line",
			width:   24,
			height:  5,
			content: strings.Repeat("a very long line ", 10),
		},
		{
			name:    "more lines than height",
			width:   30,
			height:  5,
			content: strings.Repeat("line\n", 20),
		},
		{
			name:    "empty content",
			width:   40,
			height:  6,
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel("Proxies", design.Default()).
				WithContent(tt.content).
				WithDimensions(tt.width, tt.height)

			output := panel.Render()
			assert.NotEmpty(t, output)

			w, h := panel.InnerSize()
			assert.GreaterOrEqual(t, w, 1)
			assert.GreaterOrEqual(t, h, 1)
		})
	}
}

func TestPanelFocusSwitchesBorder(t *testing.T) {
	st := design.Default()
	panel := NewPanel("Proxies", st).WithDimensions(30, 6)

	assert.Equal(t, st.PlainBorder, panel.borderStyle())
	panel.SetFocused(true)
	assert.Equal(t, st.FocusedBorder, panel.borderStyle())
}

func TestStatusBarMessageOverridesText(t *testing.T) {
	bar := NewStatusBar(40).
		WithLeftText("3 groups").
		WithRightText("http://127.0.0.1:9090")
	out := bar.Render()
	assert.Contains(t, out, "3 groups")

	bar.WithMessage("copied", MessageSuccess)
	out = bar.Render()
	assert.Contains(t, out, "copied")
	assert.NotContains(t, out, "3 groups")
}
