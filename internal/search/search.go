// Package search implements the Search screen: a text input filtering
// playlists and affirmations with a trigram matcher.
package search

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/affirm/internal/keymap"
)

// ResultMsg is emitted on Enter (selection) or on Escape with an empty
// query (cancel). The root model opens the selected item or leaves the
// Search tab.
type ResultMsg struct {
	Item     Item // nil if canceled
	Canceled bool
}

// Model is the search screen.
type Model struct {
	input   textinput.Model
	keys    *keymap.Resolver
	items   []Item
	matcher *Matcher
	matches []Match
	scope   Scope
	cursor  int
	offset  int
	width   int
	height  int
}

// New creates a search model with a focused input.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search playlists and affirmations"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Focus()
	return Model{
		input: ti,
		keys:  keymap.ForContexts(keymap.ContextSearch),
	}
}

// SetItems replaces the searchable items and re-runs the current query.
func (m *Model) SetItems(items []Item) {
	m.items = items
	m.matcher = NewMatcher(items)
	m.updateMatches()
}

// SetSize sets the screen area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-lenPrompt-2, 1)
	m.adjustOffset()
}

const lenPrompt = 2

// Query returns the current query text.
func (m Model) Query() string {
	return m.input.Value()
}

// SetQuery replaces the query text.
func (m *Model) SetQuery(q string) {
	m.input.SetValue(q)
	m.cursor = 0
	m.offset = 0
	m.updateMatches()
}

// Scope returns the active result filter.
func (m Model) Scope() Scope {
	return m.scope
}

// Matches returns the items matching the query within the active scope,
// best first.
func (m Model) Matches() []Item {
	out := make([]Item, len(m.matches))
	for i, match := range m.matches {
		out[i] = m.items[match.Index]
	}
	return out
}

// Selected returns the item under the cursor.
func (m Model) Selected() (Item, bool) {
	if m.cursor >= len(m.matches) {
		return nil, false
	}
	return m.items[m.matches[m.cursor].Index], true
}

// Cursor returns the cursor position within the matches.
func (m Model) Cursor() int {
	return m.cursor
}

// Focus focuses the query input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus from the query input.
func (m *Model) Blur() {
	m.input.Blur()
}

// Reset clears the query, scope and cursor. Items are kept.
func (m *Model) Reset() {
	m.input.Reset()
	m.scope = ScopeAll
	m.cursor = 0
	m.offset = 0
	m.updateMatches()
}

func (m *Model) updateMatches() {
	m.matches = nil
	if m.matcher == nil {
		return
	}
	for _, match := range m.matcher.Search(m.input.Value()) {
		if m.scope.Accepts(m.items[match.Index]) {
			m.matches = append(m.matches, match)
		}
	}

	if m.cursor >= len(m.matches) {
		m.cursor = max(0, len(m.matches)-1)
	}
	m.adjustOffset()
}

func (m *Model) adjustOffset() {
	visible := m.visibleHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys while the Search tab is active. Keys not bound in
// the search context go to the query input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch m.keys.Resolve(msg.String()) {
		case keymap.ActionBack:
			if m.input.Value() != "" {
				m.SetQuery("")
				return m, nil
			}
			return m, func() tea.Msg { return ResultMsg{Canceled: true} }

		case keymap.ActionSelect:
			selected, ok := m.Selected()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return ResultMsg{Item: selected} }

		case keymap.ActionMoveUp:
			if m.cursor > 0 {
				m.cursor--
				m.adjustOffset()
			}
			return m, nil

		case keymap.ActionMoveDown:
			if m.cursor < len(m.matches)-1 {
				m.cursor++
				m.adjustOffset()
			}
			return m, nil

		case keymap.ActionNextFilter:
			m.scope = m.scope.Next()
			m.cursor = 0
			m.offset = 0
			m.updateMatches()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.cursor = 0
		m.offset = 0
		m.updateMatches()
	}
	return m, cmd
}
