// internal/app/layout.go
package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/affirm/internal/ui/playerbar"
	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/tabbar"
)

const (
	headerHeight = 1

	// Player screen: title line above the pager; progress rule, controls
	// and key hints below it.
	playerHeaderHeight   = 1
	playerControlsHeight = 3
)

// bodyHeight is the height left for a browse or detail screen.
func (m Model) bodyHeight() int {
	h := m.Height - headerHeight - tabbar.Height
	if m.Player.Open() {
		h -= playerbar.Height
	}
	return max(h, 1)
}

// pagerSize is the area of the full-screen player's pages.
func (m Model) pagerSize() (int, int) {
	return m.Width, max(m.Height-playerHeaderHeight-playerControlsHeight, 1)
}

// resize propagates the window size to sized components.
func (m *Model) resize() {
	body := m.bodyHeight()
	m.Search.SetSize(m.Width, body)
	m.Favorites.SetSize(m.Width, body)
	m.Detail.Layout(m.Width)
	m.Help.Width = max(m.Width-8, 20)
	if m.Player.Pager != nil {
		m.Player.Pager.SetSize(m.pagerSize())
	}
}

// fitHeight pads or cuts s to exactly height lines of width cells.
func fitHeight(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = render.Pad(ansi.Truncate(l, width, ""), width)
	}
	return strings.Join(lines, "\n")
}

// scrollWindow returns height lines of content, scrolled so that the focus
// span [top, top+span) is visible.
func scrollWindow(lines []string, top, span, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := 0
	if top+span > height {
		start = top + span - height
	}
	if top < start {
		start = top
	}
	start = max(0, min(start, len(lines)-height))
	return lines[start : start+height]
}
