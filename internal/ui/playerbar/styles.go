package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/affirm/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border)
}
