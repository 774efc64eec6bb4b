// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpCatalogOpen   Op = "open catalog"
	OpCatalogLoad   Op = "load catalog"
	OpCatalogImport Op = "import content pack"
	OpContentReload Op = "reload content pack"
	OpContentWatch  Op = "watch content pack"

	// Playlist operations
	OpPlaylistLoad Op = "load playlist"
	OpSessionSave  Op = "record session"
	OpHistoryClear Op = "clear history"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// Favorites
	OpFavoriteToggle Op = "update favorites"
	OpFavoritesLoad  Op = "load favorites"

	// Search
	OpSearch Op = "search"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
