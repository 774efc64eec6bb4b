package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the bordered card style, highlighted when selected.
func CardStyle(selected bool) lipgloss.Style {
	t := T()
	border := t.Border
	if selected {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// TintedCardStyle is a card whose border carries a category color.
func TintedCardStyle(color string, selected bool) lipgloss.Style {
	s := CardStyle(selected)
	if color != "" && !selected {
		s = s.BorderForeground(lipgloss.Color(color))
	}
	return s
}
