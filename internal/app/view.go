// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/keymap"
	"github.com/llehouerou/affirm/internal/ui/overlay"
	"github.com/llehouerou/affirm/internal/ui/playerbar"
	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/styles"
	"github.com/llehouerou/affirm/internal/ui/tabbar"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var screen string
	if m.Screen == ScreenPlayer && m.Player.Open() {
		screen = m.renderPlayer()
	} else {
		screen = m.renderFrame()
	}

	if m.ShowHelp {
		screen = overlay.Place(screen, m.renderHelp(), m.Width, m.Height, overlay.Center)
	}
	if m.Confirm.Active() {
		screen = overlay.Place(screen, m.Confirm.View(m.Width), m.Width, m.Height, overlay.Center)
	}
	if m.Toast.Text != "" {
		box := overlay.Toast(m.Toast.Text, m.Toast.Kind, max(m.Width/2, 24))
		screen = overlay.Place(screen, box, m.Width, m.Height, overlay.BottomRight)
	}
	return screen
}

// renderFrame renders the browse and detail screens: header, body, the
// player bar while a session runs, and the tab bar.
func (m Model) renderFrame() string {
	parts := []string{
		m.renderHeader(),
		fitHeight(m.renderBody(), m.Width, m.bodyHeight()),
	}
	if m.Player.Open() {
		parts = append(parts, playerbar.Render(playerbar.NewState(m.Player.Session), m.Width))
	}
	parts = append(parts, tabbar.Render(m.Tab, m.Width))
	return strings.Join(parts, "\n")
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	title := m.Tab.String()
	if m.Screen == ScreenDetail {
		title = icons.FormatPlaylist(m.Detail.Playlist.Title)
	}
	return render.Row(
		" "+styles.Brand("affirm")+s.Subtle.Render("  "+render.Sanitize(title)),
		s.Subtle.Render("? help "),
		m.Width,
	)
}

func (m Model) renderBody() string {
	width, height := m.Width, m.bodyHeight()
	if m.Screen == ScreenDetail {
		return m.renderDetail(width, height)
	}
	switch m.Tab {
	case tabbar.Explore:
		return m.renderExplore(width, height)
	case tabbar.Favorites:
		return m.renderFavorites()
	case tabbar.Search:
		return m.Search.View()
	case tabbar.Settings:
		return m.renderSettings(width)
	default:
		return m.renderHome(width, height)
	}
}

// renderHelp is the help sheet: global keys next to the active screen's.
func (m Model) renderHelp() string {
	s := styles.T().S()
	groups := [][]key.Binding{keymap.HelpKeys(keymap.ContextGlobal)}
	if ctx := m.context(); ctx != keymap.ContextGlobal {
		groups = append(groups, keymap.HelpKeys(ctx))
	}
	body := s.Title.Render(styles.Brand("Keys")) + "\n\n" + m.Help.FullHelpView(groups)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(0, 2).
		Render(body)
}
