package search

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// Lines taken by the input, the scope pills, the separator and the footer.
const chromeHeight = 4

func (m Model) visibleHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m Model) emptyMessage() string {
	switch {
	case m.matcher == nil:
		return "Loading..."
	case m.input.Value() != "":
		return "No matches"
	default:
		return "Nothing to search yet"
	}
}

func (m Model) scopeLine() string {
	s := styles.T().S()
	pills := make([]string, 0, len(Scopes))
	for _, scope := range Scopes {
		if scope == m.scope {
			pills = append(pills, s.PillOn.Render(scope.String()))
			continue
		}
		pills = append(pills, s.Pill.Render(scope.String()))
	}
	return strings.Join(pills, " ")
}

func formatResultLine(item Item, width int, isCursor bool) string {
	s := styles.T().S()
	prefix := "  "
	if isCursor {
		prefix = icons.Chevron() + " "
	}
	avail := width - lipgloss.Width(prefix)

	twoCol, ok := item.(TwoColumnItem)
	if !ok || twoCol.RightColumn() == "" {
		return prefix + render.TruncateEllipsis(render.Sanitize(item.DisplayText()), avail)
	}

	right := render.TruncateEllipsis(render.Sanitize(twoCol.RightColumn()), max(avail/3, 1))
	leftW := max(avail-lipgloss.Width(right)-2, 1)
	left := render.TruncateEllipsis(render.Sanitize(twoCol.LeftColumn()), leftW)
	if _, isPlaylist := item.(PlaylistItem); isPlaylist {
		left = s.Title.Render(left)
	}
	return prefix + render.Row(left, s.Subtle.Render(right), avail)
}

// View renders the screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := styles.T().S()

	lines := []string{
		m.input.View(),
		m.scopeLine(),
		s.Subtle.Render(strings.Repeat("─", m.width)),
	}

	visible := m.visibleHeight()
	var results []string
	if len(m.matches) == 0 {
		results = append(results, s.Muted.Render(m.emptyMessage()))
	} else {
		end := min(m.offset+visible, len(m.matches))
		for i := m.offset; i < end; i++ {
			item := m.items[m.matches[i].Index]
			line := formatResultLine(item, m.width, i == m.cursor)
			if i == m.cursor {
				line = s.Cursor.Render(render.Pad(line, m.width))
			}
			results = append(results, line)
		}
	}
	for len(results) < visible {
		results = append(results, "")
	}
	lines = append(lines, results...)

	footer := ""
	if m.matcher != nil {
		footer = english.Plural(len(m.matches), "result", "")
	}
	lines = append(lines, s.Subtle.Render(footer))
	return strings.Join(lines, "\n")
}
