package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/llehouerou/affirm/internal/sequence"
)

//go:embed content/default.toml
var defaultPack []byte

// Pack is the on-disk content format: categories plus playlists with their
// affirmations, in display order.
type Pack struct {
	Categories []PackCategory `toml:"categories"`
	Playlists  []PackPlaylist `toml:"playlists"`
}

type PackCategory struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Emoji string `toml:"emoji"`
	Color string `toml:"color"`
}

type PackPlaylist struct {
	ID           string            `toml:"id"`
	Title        string            `toml:"title"`
	Description  string            `toml:"description"`
	Duration     string            `toml:"duration"`
	Cover        string            `toml:"cover"`
	Category     string            `toml:"category"`
	Section      string            `toml:"section"`
	Affirmations []PackAffirmation `toml:"affirmations"`
}

type PackAffirmation struct {
	ID       string `toml:"id"`
	Text     string `toml:"text"`
	Duration string `toml:"duration"`
}

// ErrInvalidPack wraps every validation failure of a content pack.
var ErrInvalidPack = errors.New("invalid content pack")

// DefaultPack returns the built-in content.
func DefaultPack() (Pack, error) {
	var p Pack
	if _, err := toml.Decode(string(defaultPack), &p); err != nil {
		return Pack{}, fmt.Errorf("decode default pack: %w", err)
	}
	return p, p.Validate()
}

// DecodePack parses and validates a pack.
func DecodePack(r io.Reader) (Pack, error) {
	var p Pack
	if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
		return Pack{}, fmt.Errorf("decode pack: %w", err)
	}
	return p, p.Validate()
}

// LoadPackFile reads a pack from path.
func LoadPackFile(path string) (Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pack{}, err
	}
	defer f.Close()
	p, err := DecodePack(f)
	if err != nil {
		return Pack{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks ids: categories and playlists must be unique, playlists
// must reference known categories, and affirmation ids must form a valid
// sequence.
func (p Pack) Validate() error {
	cats := make(map[string]struct{}, len(p.Categories))
	for _, c := range p.Categories {
		if c.ID == "" {
			return fmt.Errorf("%w: category %q has no id", ErrInvalidPack, c.Title)
		}
		if _, dup := cats[c.ID]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidPack, c.ID)
		}
		cats[c.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(p.Playlists))
	for _, pl := range p.Playlists {
		if pl.ID == "" {
			return fmt.Errorf("%w: playlist %q has no id", ErrInvalidPack, pl.Title)
		}
		if _, dup := seen[pl.ID]; dup {
			return fmt.Errorf("%w: duplicate playlist %q", ErrInvalidPack, pl.ID)
		}
		seen[pl.ID] = struct{}{}
		if pl.Category != "" {
			if _, ok := cats[pl.Category]; !ok {
				return fmt.Errorf("%w: playlist %q references unknown category %q",
					ErrInvalidPack, pl.ID, pl.Category)
			}
		}
		if _, err := pl.Sequence(); err != nil {
			return fmt.Errorf("%w: playlist %q: %w", ErrInvalidPack, pl.ID, err)
		}
	}
	return nil
}

// Sequence converts the playlist's affirmations to a playable sequence.
func (pl PackPlaylist) Sequence() (sequence.Sequence, error) {
	items := make([]sequence.Item, len(pl.Affirmations))
	for i, a := range pl.Affirmations {
		items[i] = sequence.Item{ID: a.ID, Text: a.Text}
	}
	return sequence.New(items)
}
