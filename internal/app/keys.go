// internal/app/keys.go
package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/affirm/internal/app/handler"
	"github.com/llehouerou/affirm/internal/keymap"
	"github.com/llehouerou/affirm/internal/playback"
	"github.com/llehouerou/affirm/internal/ui/tabbar"
)

// searchPassthrough are the keys that keep their global meaning while the
// search input has focus.
var searchPassthrough = map[string]bool{
	"tab":       true,
	"shift+tab": true,
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.closePlayer()
		return m, tea.Quit
	}

	if m.Confirm.Active() {
		var cmd tea.Cmd
		m.Confirm, cmd = m.Confirm.Update(msg)
		return m, cmd
	}

	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	if m.Screen == ScreenBrowse && m.Tab == tabbar.Search && !searchPassthrough[key] {
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	ctx := m.context()
	resolver, ok := m.resolvers[ctx]
	if !ok {
		resolver = m.resolvers[keymap.ContextBrowse]
	}
	_, cmd := handler.Chain(resolver.Resolve(key), m.screenHandler(), m.handleGlobalAction)
	return m, cmd
}

// screenHandler returns the action handler of the active screen.
func (m *Model) screenHandler() handler.Handler {
	switch m.Screen {
	case ScreenPlayer:
		return m.handlePlayerAction
	case ScreenDetail:
		return m.handleDetailAction
	}
	switch m.Tab {
	case tabbar.Explore:
		return m.handleExploreAction
	case tabbar.Favorites:
		return m.handleFavoritesAction
	case tabbar.Settings:
		return m.handleSettingsAction
	default:
		return m.handleHomeAction
	}
}

func (m *Model) handleGlobalAction(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionQuit:
		m.closePlayer()
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
	case keymap.ActionNextTab:
		return handler.Handled(m.switchTab(m.Tab.Next()))
	case keymap.ActionPrevTab:
		return handler.Handled(m.switchTab(m.Tab.Prev()))
	case keymap.ActionTabHome:
		return handler.Handled(m.switchTab(tabbar.Home))
	case keymap.ActionTabExplore:
		return handler.Handled(m.switchTab(tabbar.Explore))
	case keymap.ActionTabFavs:
		return handler.Handled(m.switchTab(tabbar.Favorites))
	case keymap.ActionTabSearch:
		return handler.Handled(m.switchTab(tabbar.Search))
	case keymap.ActionTabSettings:
		return handler.Handled(m.switchTab(tabbar.Settings))
	case keymap.ActionShowPlayer:
		if !m.Player.Open() {
			return handler.HandledNoCmd
		}
		m.showPlayer()
	case keymap.ActionPlayPause:
		if err := m.Host.TogglePlayPause(); err != nil && !errors.Is(err, playback.ErrNoSession) {
			m.Log.Warn().Err(err).Msg("toggle play/pause")
		}
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// switchTab shows tab t on the browse screen. The full-screen player is
// hidden, not closed.
func (m *Model) switchTab(t tabbar.Tab) tea.Cmd {
	m.Screen = ScreenBrowse
	if m.Tab == tabbar.Search && t != tabbar.Search {
		m.Search.Blur()
	}
	m.Tab = t
	m.saveUI()
	if t == tabbar.Search {
		return m.Search.Focus()
	}
	return nil
}
