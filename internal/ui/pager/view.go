package pager

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// View renders the viewport. Mid-scroll it shows the bottom of one page and
// the top of the next.
func (p *Pager) View() string {
	p.mu.Lock()
	width, height, pos := p.width, p.height, p.pos
	current := p.target
	p.mu.Unlock()

	if width <= 0 || height <= 0 {
		return ""
	}
	if len(p.items) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			styles.T().S().Muted.Render("This playlist has no affirmations yet."))
	}

	first := int(math.Floor(pos))
	offset := int(math.Round((pos - float64(first)) * float64(height)))
	if offset >= height {
		first++
		offset = 0
	}

	lines := make([]string, 0, height*2)
	lines = append(lines, p.pageLines(first, width, height, first == current)...)
	if offset > 0 {
		lines = append(lines, p.pageLines(first+1, width, height, first+1 == current)...)
	}
	return strings.Join(lines[offset:offset+height], "\n")
}

// pageLines renders page i as exactly height lines of width cells.
func (p *Pager) pageLines(i, width, height int, current bool) []string {
	blank := strings.Repeat(" ", width)
	if i < 0 || i >= len(p.items) {
		out := make([]string, height)
		for j := range out {
			out[j] = blank
		}
		return out
	}

	textWidth := max(min(width-8, 60), 10)
	wrapped := render.Wrap(p.items[i].Text, textWidth)
	style := styles.T().S().Title
	if !current {
		style = styles.T().S().Muted
	}
	for j, l := range wrapped {
		wrapped[j] = style.Render(l)
	}
	block := lipgloss.JoinVertical(lipgloss.Center, wrapped...)
	page := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)

	out := strings.Split(page, "\n")
	for len(out) < height {
		out = append(out, blank)
	}
	return out[:height]
}
