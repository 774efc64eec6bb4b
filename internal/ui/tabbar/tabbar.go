// Package tabbar renders the bottom tab navigation of the browse screens.
package tabbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/affirm/internal/ui/styles"
)

// Height is the fixed height of the tab bar (single line).
const Height = 1

// Tab identifies a browse screen.
type Tab int

const (
	Home Tab = iota
	Explore
	Favorites
	Search
	Settings
)

// Tabs lists every tab in display order.
var Tabs = []Tab{Home, Explore, Favorites, Search, Settings}

var names = map[Tab]string{
	Home:      "Home",
	Explore:   "Explore",
	Favorites: "Favorites",
	Search:    "Search",
	Settings:  "Settings",
}

// String returns the tab's label.
func (t Tab) String() string {
	return names[t]
}

// Parse returns the tab labelled name.
func Parse(name string) (Tab, bool) {
	for _, t := range Tabs {
		if names[t] == name {
			return t, true
		}
	}
	return Home, false
}

// Key is the number key that selects the tab.
func (t Tab) Key() string {
	return string(rune('1' + int(t)))
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(int(t)+len(Tabs)-1)%len(Tabs)]
}

func keyStyle(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
}

func nameStyle(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Foreground(styles.T().FgBase).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(styles.T().FgMuted)
}

// Render returns the tab bar centered in width.
func Render(current Tab, width int) string {
	if width < 20 {
		return ""
	}

	parts := make([]string, 0, len(Tabs))
	separator := lipgloss.NewStyle().Foreground(styles.T().Border).Render(" │ ")
	for _, t := range Tabs {
		active := t == current
		name := nameStyle(active).Render(t.String())
		if active {
			name = styles.Brand(t.String())
		}
		parts = append(parts, keyStyle(active).Render(t.Key())+" "+name)
	}
	content := strings.Join(parts, separator)

	if w := lipgloss.Width(content); w > width {
		// Too narrow for labels: keys only.
		keys := make([]string, 0, len(Tabs))
		for _, t := range Tabs {
			keys = append(keys, keyStyle(t == current).Render(t.Key()))
		}
		content = strings.Join(keys, " ")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
