// Package keymap defines key bindings and action dispatch for the application.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Contexts group bindings by the screen that handles them.
const (
	ContextGlobal = "global"
	ContextBrowse = "browse"
	ContextDetail = "detail"
	ContextPlayer = "player"
	ContextSearch = "search"
)

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Description string
	Context     string
	Action      Action
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit", ContextGlobal, ActionQuit},
	{[]string{"?"}, "Help", ContextGlobal, ActionHelp},
	{[]string{"tab"}, "Next tab", ContextGlobal, ActionNextTab},
	{[]string{"shift+tab"}, "Previous tab", ContextGlobal, ActionPrevTab},
	{[]string{"1"}, "Home", ContextGlobal, ActionTabHome},
	{[]string{"2"}, "Explore", ContextGlobal, ActionTabExplore},
	{[]string{"3"}, "Favorites", ContextGlobal, ActionTabFavs},
	{[]string{"4"}, "Search", ContextGlobal, ActionTabSearch},
	{[]string{"5"}, "Settings", ContextGlobal, ActionTabSettings},
	{[]string{"p"}, "Open player", ContextGlobal, ActionShowPlayer},
	{[]string{" "}, "Play/pause", ContextGlobal, ActionPlayPause},

	// Browse screens
	{[]string{"k", "up"}, "Up", ContextBrowse, ActionMoveUp},
	{[]string{"j", "down"}, "Down", ContextBrowse, ActionMoveDown},
	{[]string{"h", "left"}, "Left", ContextBrowse, ActionMoveLeft},
	{[]string{"l", "right"}, "Right", ContextBrowse, ActionMoveRight},
	{[]string{"enter"}, "Open", ContextBrowse, ActionSelect},
	{[]string{"f"}, "Filter", ContextBrowse, ActionNextFilter},
	{[]string{"esc"}, "Back", ContextBrowse, ActionBack},

	// Playlist detail
	{[]string{"k", "up"}, "Up", ContextDetail, ActionMoveUp},
	{[]string{"j", "down"}, "Down", ContextDetail, ActionMoveDown},
	{[]string{"enter"}, "Play", ContextDetail, ActionSelect},
	{[]string{"o"}, "Play from here", ContextDetail, ActionPlayFrom},
	{[]string{"F"}, "Favorite", ContextDetail, ActionToggleFavorite},
	{[]string{"esc", "backspace"}, "Back", ContextDetail, ActionBack},

	// Player
	{[]string{" ", "enter"}, "Play/pause", ContextPlayer, ActionPlayPause},
	{[]string{"j", "down", "pgdown"}, "Next", ContextPlayer, ActionNextItem},
	{[]string{"k", "up", "pgup"}, "Previous", ContextPlayer, ActionPrevItem},
	{[]string{"g", "home"}, "First", ContextPlayer, ActionFirstItem},
	{[]string{"G", "end"}, "Last", ContextPlayer, ActionLastItem},
	{[]string{"F"}, "Favorite", ContextPlayer, ActionToggleFavorite},
	{[]string{"esc"}, "Minimize", ContextPlayer, ActionHidePlayer},
	{[]string{"x"}, "Close player", ContextPlayer, ActionClosePlayer},

	// Search
	{[]string{"up", "ctrl+p"}, "Up", ContextSearch, ActionMoveUp},
	{[]string{"down", "ctrl+n"}, "Down", ContextSearch, ActionMoveDown},
	{[]string{"enter"}, "Open", ContextSearch, ActionSelect},
	{[]string{"ctrl+f"}, "Filter", ContextSearch, ActionNextFilter},
	{[]string{"esc"}, "Clear", ContextSearch, ActionBack},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpKeys converts the bindings of a context for bubbles/help.
func HelpKeys(context string) []key.Binding {
	bindings := ByContext(context)
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(displayKey(b.Keys[0]), b.Description),
		))
	}
	return out
}

// displayKey names keys whose literal form is invisible.
func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
