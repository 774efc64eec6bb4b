package catalog

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a playlist or category does not exist.
var ErrNotFound = errors.New("not found")

// Section groups playlists on the home and explore screens.
type Section string

const (
	SectionFeatured    Section = "featured"
	SectionRecommended Section = "recommended"
	SectionMoney       Section = "money"
	SectionBrain       Section = "brain"
	SectionExam        Section = "exam"
	SectionTrending    Section = "trending"
)

// HomeSections lists the themed rows of the home screen in display order.
var HomeSections = []Section{SectionMoney, SectionBrain, SectionExam}

// Title returns the heading shown above the section.
func (s Section) Title() string {
	switch s {
	case SectionFeatured:
		return "Just For You"
	case SectionRecommended:
		return "Recommended"
	case SectionMoney:
		return "Money Manifestation"
	case SectionBrain:
		return "Brain Power"
	case SectionExam:
		return "Exam Affirmations"
	case SectionTrending:
		return "Trending Sessions"
	default:
		return string(s)
	}
}

// Affirmation is one line of a playlist.
type Affirmation struct {
	ID       string
	Text     string
	Duration string // optional display label, e.g. "5 sec"
}

// Playlist is an ordered set of affirmations with display metadata.
// Affirmations is only filled by Playlist(id); listings leave it nil and
// report Count instead.
type Playlist struct {
	ID           string
	Title        string
	Description  string
	Duration     string
	Cover        string
	CategoryID   string
	Section      Section
	Count        int
	Favorite     bool
	Affirmations []Affirmation
}

// Category is a tile of the explore grid.
type Category struct {
	ID    string
	Title string
	Emoji string
	Color string
	Count int
}

// Session records that a playlist was opened in the player.
type Session struct {
	ID         string
	PlaylistID string
	Title      string
	OpenedAt   time.Time
}
