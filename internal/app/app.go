// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/config"
	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/keymap"
	"github.com/llehouerou/affirm/internal/notify"
	"github.com/llehouerou/affirm/internal/playback"
	"github.com/llehouerou/affirm/internal/search"
	"github.com/llehouerou/affirm/internal/state"
	"github.com/llehouerou/affirm/internal/ui/confirm"
	"github.com/llehouerou/affirm/internal/ui/tabbar"
)

// Screen is what fills the body: a browse tab, a playlist's detail page or
// the full-screen player.
type Screen int

const (
	ScreenBrowse Screen = iota
	ScreenDetail
	ScreenPlayer
)

// Deps are the services the application runs on.
type Deps struct {
	Catalog  catalog.Interface
	Host     *playback.Host
	Notifier notify.Notifier
	Config   *config.Config
	Logger   zerolog.Logger
	// State restores and saves the tab and settings. Optional.
	State state.Interface
	// Reloads delivers content pack reloads. Nil when watching is off.
	Reloads <-chan catalog.Reload
}

// Model is the root application model containing all state.
type Model struct {
	Catalog       catalog.Interface
	Host          *playback.Host
	Notifier      notify.Notifier
	State         state.Interface
	Log           zerolog.Logger
	PlayerCfg     config.PlayerConfig
	IconStyle     string
	Notifications bool
	Reloads       <-chan catalog.Reload

	Tab        tabbar.Tab
	Screen     Screen
	prevScreen Screen

	Home      HomeState
	Explore   ExploreState
	Favorites FavoritesState
	Search    search.Model
	Settings  SettingsState
	Detail    DetailState
	Player    PlayerState

	Help     help.Model
	ShowHelp bool
	Confirm  confirm.Model
	Toast    Toast

	resolvers map[string]*keymap.Resolver

	Width  int
	Height int
}

// New creates the application model. Data is loaded by Init.
func New(deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	h := help.New()
	h.ShowAll = true

	m := Model{
		Catalog:       deps.Catalog,
		Host:          deps.Host,
		Notifier:      deps.Notifier,
		State:         deps.State,
		Log:           deps.Logger,
		PlayerCfg:     cfg.GetPlayerConfig(),
		IconStyle:     cfg.Icons,
		Notifications: cfg.NotificationsEnabled(),
		Reloads:       deps.Reloads,
		Tab:           tabbar.Home,
		Screen:        ScreenBrowse,
		Favorites:     newFavoritesState(),
		Search:        search.New(),
		Settings:      SettingsState{},
		Help:          h,
		resolvers: map[string]*keymap.Resolver{
			keymap.ContextBrowse: keymap.ForContexts(keymap.ContextGlobal, keymap.ContextBrowse),
			keymap.ContextDetail: keymap.ForContexts(keymap.ContextGlobal, keymap.ContextDetail),
			keymap.ContextPlayer: keymap.ForContexts(keymap.ContextGlobal, keymap.ContextPlayer),
		},
	}
	m.restoreUI()
	return m
}

// restoreUI applies the state saved by the previous run.
func (m *Model) restoreUI() {
	if m.State == nil {
		return
	}
	ui, err := m.State.GetUI()
	if err != nil {
		m.Log.Warn().Err(err).Msg("restore ui state")
		return
	}
	if ui == nil {
		return
	}
	if t, ok := tabbar.Parse(ui.Tab); ok && t != tabbar.Search {
		m.Tab = t
	}
	m.Explore.Filter = parseExploreFilter(ui.ExploreFilter)
	m.Notifications = ui.Notifications
	if ui.IconStyle != "" {
		m.IconStyle = ui.IconStyle
		icons.Init(ui.IconStyle)
	}
}

// saveUI records the tab and settings for the next run.
func (m *Model) saveUI() {
	if m.State == nil {
		return
	}
	m.State.SaveUI(state.UIState{
		Tab:           m.Tab.String(),
		ExploreFilter: m.Explore.Filter.String(),
		Notifications: m.Notifications,
		IconStyle:     m.IconStyle,
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadBrowseCmd(m.Catalog),
		WatchReloads(m.Reloads),
	)
}

// context names the key context of the active screen.
func (m Model) context() string {
	switch m.Screen {
	case ScreenPlayer:
		return keymap.ContextPlayer
	case ScreenDetail:
		return keymap.ContextDetail
	}
	if m.Tab == tabbar.Search {
		return keymap.ContextSearch
	}
	return keymap.ContextBrowse
}

// notifier returns the notifier honoring the settings toggle.
func (m Model) notifier() notify.Notifier {
	if !m.Notifications || m.Notifier == nil {
		return notify.Disabled{}
	}
	return m.Notifier
}
