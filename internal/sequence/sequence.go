// Package sequence holds the ordered, session-fixed list of affirmations
// a player session walks through.
package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyID is returned when an item has no id.
	ErrEmptyID = errors.New("item id is empty")
	// ErrDuplicateID is returned when two items share an id.
	ErrDuplicateID = errors.New("duplicate item id")
)

// Item is a single displayable unit of playback content.
type Item struct {
	ID   string
	Text string
}

// Sequence is an ordered, immutable list of items.
// The zero value is an empty sequence.
type Sequence struct {
	items []Item
	index map[string]int
}

// New builds a sequence from items. The slice is copied, so later changes to
// items do not affect the sequence.
func New(items []Item) (Sequence, error) {
	s := Sequence{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, it := range items {
		if it.ID == "" {
			return Sequence{}, fmt.Errorf("item %d: %w", i, ErrEmptyID)
		}
		if prev, ok := s.index[it.ID]; ok {
			return Sequence{}, fmt.Errorf("item %d (%q, first at %d): %w", i, it.ID, prev, ErrDuplicateID)
		}
		s.index[it.ID] = i
		s.items[i] = it
	}
	return s, nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures.
func MustNew(items ...Item) Sequence {
	s, err := New(items)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of items.
func (s Sequence) Len() int {
	return len(s.items)
}

// IsEmpty returns true if the sequence has no items.
func (s Sequence) IsEmpty() bool {
	return len(s.items) == 0
}

// At returns the item at index i and true, or the zero Item and false when
// i is out of range.
func (s Sequence) At(i int) (Item, bool) {
	if i < 0 || i >= len(s.items) {
		return Item{}, false
	}
	return s.items[i], true
}

// Items returns a copy of all items.
func (s Sequence) Items() []Item {
	result := make([]Item, len(s.items))
	copy(result, s.items)
	return result
}

// IndexOf returns the position of the item with the given id, or -1.
func (s Sequence) IndexOf(id string) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// Valid reports whether i is a valid position.
func (s Sequence) Valid(i int) bool {
	return i >= 0 && i < len(s.items)
}
