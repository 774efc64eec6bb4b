package search

import (
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/affirm/internal/catalog"
)

// Item represents a searchable item.
type Item interface {
	// FilterValue returns the string to match against.
	FilterValue() string
	// DisplayText returns the string to display in results.
	DisplayText() string
}

// TwoColumnItem is an optional interface for items that want two-column display.
type TwoColumnItem interface {
	Item
	// LeftColumn returns the left column text (e.g., playlist title).
	LeftColumn() string
	// RightColumn returns the right column text (e.g., affirmation count).
	RightColumn() string
}

// PlaylistItem is a playlist result. Its description is searched too.
type PlaylistItem struct {
	catalog.Playlist
}

func (p PlaylistItem) FilterValue() string { return p.Title + " " + p.Description }
func (p PlaylistItem) DisplayText() string { return p.Title }
func (p PlaylistItem) LeftColumn() string  { return p.Title }
func (p PlaylistItem) RightColumn() string {
	return english.Plural(p.Count, "affirmation", "")
}

// AffirmationItem is a single affirmation result, shown with the playlist
// it belongs to.
type AffirmationItem struct {
	catalog.AffirmationHit
}

func (a AffirmationItem) FilterValue() string { return a.Text }
func (a AffirmationItem) DisplayText() string { return a.Text }
func (a AffirmationItem) LeftColumn() string  { return a.Text }
func (a AffirmationItem) RightColumn() string { return a.PlaylistTitle }

// Items builds the searchable set: playlists first, then affirmations.
func Items(playlists []catalog.Playlist, hits []catalog.AffirmationHit) []Item {
	out := make([]Item, 0, len(playlists)+len(hits))
	for _, p := range playlists {
		out = append(out, PlaylistItem{p})
	}
	for _, h := range hits {
		out = append(out, AffirmationItem{h})
	}
	return out
}

// Scope restricts results to one kind of item.
type Scope int

const (
	ScopeAll Scope = iota
	ScopePlaylists
	ScopeAffirmations
)

// Scopes lists the scopes in tab order.
var Scopes = []Scope{ScopeAll, ScopePlaylists, ScopeAffirmations}

func (s Scope) String() string {
	switch s {
	case ScopePlaylists:
		return "Playlists"
	case ScopeAffirmations:
		return "Affirmations"
	default:
		return "All"
	}
}

// Next cycles to the following scope.
func (s Scope) Next() Scope {
	return Scopes[(int(s)+1)%len(Scopes)]
}

// Accepts reports whether item belongs to the scope.
func (s Scope) Accepts(item Item) bool {
	switch s {
	case ScopePlaylists:
		_, ok := item.(PlaylistItem)
		return ok
	case ScopeAffirmations:
		_, ok := item.(AffirmationItem)
		return ok
	default:
		return true
	}
}
