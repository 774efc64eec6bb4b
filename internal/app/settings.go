// internal/app/settings.go
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/affirm/internal/app/handler"
	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/keymap"
	"github.com/llehouerou/affirm/internal/ui/overlay"
	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// Version is reported by the About row. Set at build time.
var Version = "dev"

// SettingsRow is one entry of the Settings screen.
type SettingsRow int

const (
	RowAccount SettingsRow = iota
	RowNotifications
	RowAppearance
	RowPrivacy
	RowHelp
	RowAbout
)

var settingsRows = []SettingsRow{RowAccount, RowNotifications, RowAppearance, RowPrivacy, RowHelp, RowAbout}

func (r SettingsRow) String() string {
	switch r {
	case RowAccount:
		return "Account"
	case RowNotifications:
		return "Notifications"
	case RowAppearance:
		return "Appearance"
	case RowPrivacy:
		return "Privacy"
	case RowHelp:
		return "Help"
	case RowAbout:
		return "About"
	}
	return ""
}

// iconStyles is the Appearance cycle.
var iconStyles = []icons.Style{icons.StyleNerd, icons.StyleUnicode, icons.StyleNone}

func nextIconStyle(current string) string {
	for i, s := range iconStyles {
		if string(s) == current {
			return string(iconStyles[(i+1)%len(iconStyles)])
		}
	}
	return string(iconStyles[0])
}

// confirmClearHistory tags the Privacy confirmation.
const confirmClearHistory = "clear-history"

// SettingsState is the Settings tab.
type SettingsState struct {
	Cursor int
}

// settingValue is the right-hand column of a row.
func (m Model) settingValue(r SettingsRow) string {
	switch r {
	case RowNotifications:
		if m.Notifications {
			return "On"
		}
		return "Off"
	case RowAppearance:
		if m.IconStyle == "" {
			return string(icons.StyleNone) + " icons"
		}
		return m.IconStyle + " icons"
	case RowAbout:
		return Version
	}
	return icons.Chevron()
}

func (m *Model) handleSettingsAction(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionMoveUp:
		m.Settings.Cursor = max(m.Settings.Cursor-1, 0)
	case keymap.ActionMoveDown:
		m.Settings.Cursor = min(m.Settings.Cursor+1, len(settingsRows)-1)
	case keymap.ActionSelect:
		return handler.Handled(m.activateSetting(settingsRows[m.Settings.Cursor]))
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) activateSetting(r SettingsRow) tea.Cmd {
	switch r {
	case RowAccount:
		return m.showToast("No account needed. Everything stays on this device.", overlay.Info)
	case RowNotifications:
		m.Notifications = !m.Notifications
		m.Log.Info().Bool("enabled", m.Notifications).Msg("notifications toggled")
		m.saveUI()
		if m.Notifications {
			return m.showToast("Session notifications on", overlay.Info)
		}
		return m.showToast("Session notifications off", overlay.Info)
	case RowAppearance:
		m.IconStyle = nextIconStyle(m.IconStyle)
		icons.Init(m.IconStyle)
		m.saveUI()
	case RowPrivacy:
		m.Confirm.Show("Clear history?",
			"Recent sessions will be forgotten. Favorites are kept. Everything stays on this device.",
			confirmClearHistory)
	case RowHelp:
		m.ShowHelp = true
	case RowAbout:
		return m.showToast("affirm "+Version, overlay.Info)
	}
	return nil
}

func (m Model) renderSettings(width int) string {
	s := styles.T().S()
	inner := min(width, 60)
	lines := []string{s.Heading.Render(styles.Brand("Settings"))}
	for i, r := range settingsRows {
		line := render.Row(" "+r.String(), s.Muted.Render(m.settingValue(r))+" ", inner)
		if i == m.Settings.Cursor {
			line = s.Cursor.Render(render.Pad(line, inner))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
