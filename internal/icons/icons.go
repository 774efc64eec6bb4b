package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play     string
	Pause    string
	Finished string
	Favorite string
	NotFav   string
	Playlist string
	Session  string
	Search   string
	Settings string
	Chevron  string
	emoji    bool
}

var (
	nerdIcons = Icons{
		Play:     "\uf04b",      // nf-fa-play
		Pause:    "\uf04c",      // nf-fa-pause
		Finished: "\uf00c",      // nf-fa-check
		Favorite: "\U000f08d0",  // nf-md-heart
		NotFav:   "\U000f08d1",  // nf-md-heart_outline
		Playlist: "\U000f0cb8 ", // nf-md-playlist_music
		Session:  "\uf017 ",     // nf-fa-clock_o
		Search:   "\uf002 ",     // nf-fa-search
		Settings: "\uf013 ",     // nf-fa-cog
		Chevron:  "\uf054",      // nf-fa-chevron_right
		emoji:    true,
	}

	unicodeIcons = Icons{
		Play:     "▶",
		Pause:    "⏸",
		Finished: "✓",
		Favorite: "♥",
		NotFav:   "♡",
		Playlist: "📋 ",
		Session:  "🕘 ",
		Search:   "🔍 ",
		Settings: "⚙ ",
		Chevron:  "›",
		emoji:    true,
	}

	noneIcons = Icons{
		Play:     ">",
		Pause:    "||",
		Finished: "done",
		Favorite: "*",
		NotFav:   "",
		Playlist: "",
		Session:  "",
		Search:   "",
		Settings: "",
		Chevron:  ">",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Play returns the play indicator.
func Play() string { return current.Play }

// Pause returns the pause indicator.
func Pause() string { return current.Pause }

// Transport returns the indicator for the playing state.
func Transport(playing bool) string {
	if playing {
		return current.Play
	}
	return current.Pause
}

// Finished marks a sequence that reached its last item.
func Finished() string { return current.Finished }

// Favorite returns the favorite/heart icon.
func Favorite() string { return current.Favorite }

// FavoriteToggle returns the filled or outline heart.
func FavoriteToggle(on bool) string {
	if on {
		return current.Favorite
	}
	return current.NotFav
}

// Chevron returns the "open" marker used on settings rows.
func Chevron() string { return current.Chevron }

// Emoji reports whether content emoji (category icons) should be shown.
func Emoji() bool { return current.emoji }

// FormatPlaylist prefixes a playlist title with its icon.
func FormatPlaylist(name string) string { return current.Playlist + name }

// FormatSession prefixes a recent session title with its icon.
func FormatSession(name string) string { return current.Session + name }

// FormatSearch prefixes a search prompt with its icon.
func FormatSearch(prompt string) string { return current.Search + prompt }

// FormatSettings prefixes a settings row with its icon.
func FormatSettings(name string) string { return current.Settings + name }
