// Package view turns the proxy tree plus viewport size into styled
// terminal rows. Everything here is a pure function of its arguments;
// styles and glyphs come in through the design table.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"clashview/internal/proxytree"
	"clashview/internal/tui/design"
)

// GroupStatus is the per-group rendering mode derived from tree focus.
type GroupStatus int

const (
	GroupStatusNone GroupStatus = iota
	GroupStatusFocused
	GroupStatusExpanded
)

const (
	// expandedLookBehind keeps this many members visible above the group
	// cursor when scrolling an expanded group.
	expandedLookBehind = 4
	// collapsedLookBehind keeps this many groups visible above the tree
	// cursor in the collapsed overview.
	collapsedLookBehind = 2
)

// LatencyStyle maps a delay sample to its bucket style. A delay of 0
// (measured but unreachable) shares the no-latency style.
func LatencyStyle(st *design.Styles, delay uint16) lipgloss.Style {
	switch {
	case delay == 0:
		return st.LatencyNone
	case delay <= 200:
		return st.LatencyLow
	case delay <= 400:
		return st.LatencyMid
	default:
		return st.LatencyHigh
	}
}

// GroupRows renders one group as its summary row(s) or, for an expanded
// group, one row per visible member. width is the usable row width in
// cells. All cursor indices are clamped so stale navigation state after
// a shrinking merge can never index out of range.
func GroupRows(g *proxytree.Group, width int, status GroupStatus, st *design.Styles) []string {
	// The focused indicator marks the collapsed cursor row only; an
	// expanded group is already highlighted by its member rows.
	indicator := st.Glyphs.Unfocused
	if status == GroupStatusFocused {
		indicator = st.Glyphs.Focused
	}
	prefix := st.Indicator.Render(indicator) + " "

	cursor := clampIndex(g.Cursor, len(g.Members))
	count := strconv.Itoa(len(g.Members))
	if status == GroupStatusExpanded {
		count = fmt.Sprintf("%d/%d", cursor+1, len(g.Members))
	}

	rows := []string{
		prefix +
			st.GroupName.Render(g.Name) + " " +
			st.ProxyType.Render(g.Type.String()) + " " +
			st.Count.Render(count),
	}

	if status == GroupStatusExpanded {
		return append(rows, memberRows(g, cursor, st)...)
	}

	glyphs := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		glyphs = append(glyphs, summaryGlyph(m, st))
	}

	// Each glyph occupies two cells once joined with a space; the row
	// budget also pays for the indicator prefix.
	chunk := (width - runewidth.StringWidth(indicator) - 2) / 2
	if chunk < 1 {
		chunk = 1
	}
	for start := 0; start < len(glyphs); start += chunk {
		end := start + chunk
		if end > len(glyphs) {
			end = len(glyphs)
		}
		rows = append(rows, prefix+strings.Join(glyphs[start:end], " "))
	}
	return rows
}

// summaryGlyph encodes one member as a single indicator character: its
// latency bucket for leaf proxies, a fixed marker for nested groups.
func summaryGlyph(m proxytree.Item, st *design.Styles) string {
	if !m.Type.IsNormal() {
		return st.ProxyType.Render(st.Glyphs.NotProxy)
	}
	if delay, ok := m.Delay(); ok && delay > 0 {
		return LatencyStyle(st, delay).Render(st.Glyphs.Latency)
	}
	return st.LatencyNone.Render(st.Glyphs.NoLatency)
}

func memberRows(g *proxytree.Group, cursor int, st *design.Styles) []string {
	skipped := cursor - expandedLookBehind
	if skipped < 0 {
		skipped = 0
	}

	rows := make([]string, 0, len(g.Members)-skipped)
	for i := skipped; i < len(g.Members); i++ {
		m := g.Members[i]

		glyph := st.Glyphs.Row
		if i == cursor {
			glyph = st.Glyphs.Pointer
		}

		nameStyle := st.PlainProxy
		switch {
		case g.Current == i:
			nameStyle = st.CurrentProxy
		case i == cursor:
			nameStyle = st.PointedProxy
		}

		rows = append(rows,
			st.Indicator.Render(glyph)+" "+
				nameStyle.Render(m.Name)+" "+
				st.ProxyType.Render(m.Type.String())+" "+
				delayCell(m, st))
	}
	return rows
}

// delayCell renders the latency column of an expanded member row: the
// numeric delay when one was measured, the no-latency marker for leaf
// proxies without a usable sample, and nothing for nested groups.
func delayCell(m proxytree.Item, st *design.Styles) string {
	if delay, ok := m.Delay(); ok {
		if delay > 0 {
			return LatencyStyle(st, delay).Render(strconv.Itoa(int(delay)))
		}
		return st.LatencyNone.Render(st.Glyphs.NoLatency)
	}
	if m.Type.IsNormal() {
		return st.LatencyNone.Render(st.Glyphs.NoLatency)
	}
	return ""
}

// TreeRows renders the whole tree into at most height rows of width
// cells. The vertical window follows the tree cursor: an expanded group
// starts its own row budget at the cursor, the collapsed overview keeps
// a couple of groups of context above it.
func TreeRows(t *proxytree.Tree, width, height int, st *design.Styles) []string {
	if height <= 0 || len(t.Groups) == 0 {
		return nil
	}

	cursor := clampIndex(t.Cursor, len(t.Groups))
	skip := cursor
	if !t.Expanded {
		skip = cursor - collapsedLookBehind
		if skip < 0 {
			skip = 0
		}
	}

	rows := make([]string, 0, height)
	for i := skip; i < len(t.Groups) && len(rows) < height; i++ {
		status := GroupStatusNone
		if i == cursor {
			if t.Expanded {
				status = GroupStatusExpanded
			} else {
				status = GroupStatusFocused
			}
		}
		rows = append(rows, GroupRows(t.Groups[i], width, status, st)...)
	}

	if len(rows) > height {
		rows = rows[:height]
	}
	return rows
}

func clampIndex(i, length int) int {
	if length <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
