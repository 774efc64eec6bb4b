// Package overlay draws floating boxes (toasts, the help sheet) over a
// rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/affirm/internal/ui/styles"
)

// Position anchors a box within the screen.
type Position int

const (
	Center Position = iota
	BottomRight
	TopCenter
)

// Place draws box over base at pos. Base lines shorter than width are
// padded; lines past the base height are dropped.
func Place(base, box string, width, height int, pos Position) string {
	boxW := lipgloss.Width(box)
	boxH := lipgloss.Height(box)

	var col, row int
	switch pos {
	case BottomRight:
		col = width - boxW - 1
		row = height - boxH - 1
	case TopCenter:
		col = (width - boxW) / 2
		row = 1
	default:
		col = (width - boxW) / 2
		row = (height - boxH) / 2
	}
	return Compose(base, box, width, max(col, 0), max(row, 0))
}

// Compose writes every line of box into base starting at (col, row).
// ANSI sequences on both sides are preserved.
func Compose(base, box string, width, col, row int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(box, "\n") {
		y := row + i
		if y >= len(baseLines) {
			break
		}
		lineW := ansi.StringWidth(line)
		if lineW == 0 {
			continue
		}

		baseLine := baseLines[y]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		end := col + lineW
		out := ansi.Cut(baseLine, 0, col) + line
		if end < width {
			out += ansi.Cut(baseLine, end, width)
		}
		baseLines[y] = out
	}
	return strings.Join(baseLines, "\n")
}

// Kind selects a toast's accent color.
type Kind int

const (
	Info Kind = iota
	Error
)

// Toast renders a short message box at most maxWidth cells wide.
func Toast(message string, kind Kind, maxWidth int) string {
	t := styles.T()
	border := t.Primary
	fg := t.FgBase
	if kind == Error {
		border = t.Error
		fg = t.Error
	}
	inner := max(min(lipgloss.Width(message), maxWidth-4), 1)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(fg).
		Padding(0, 1).
		Width(inner + 2).
		Render(message)
}
