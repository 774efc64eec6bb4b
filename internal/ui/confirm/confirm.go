// Package confirm provides a yes/no confirmation dialog.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// ResultMsg reports the answer. Context is what Show was given.
type ResultMsg struct {
	Confirmed bool
	Context   any
}

// Model is a yes/no confirmation dialog.
type Model struct {
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the dialog. context comes back in the ResultMsg.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	*m = Model{}
}

// Active returns whether the dialog is shown.
func (m Model) Active() bool {
	return m.active
}

// Update answers on enter/y or esc/n. Other keys are swallowed while the
// dialog is shown.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}

	var confirmed bool
	switch keyMsg.String() {
	case "enter", "y", "Y":
		confirmed = true
	case "esc", "n", "N":
		confirmed = false
	default:
		return m, nil
	}

	ctx := m.context
	m.Reset()
	return m, func() tea.Msg {
		return ResultMsg{Confirmed: confirmed, Context: ctx}
	}
}

// View renders the dialog box, at most maxWidth cells wide. The box
// never grows past 50 cells of text.
func (m Model) View(maxWidth int) string {
	if !m.active {
		return ""
	}
	t := styles.T()
	s := t.S()
	// Border and padding take 6 cells.
	inner := min(maxWidth-6, 50)
	if inner <= 0 {
		return ""
	}

	lines := []string{s.Title.Render(render.TruncateEllipsis(m.title, inner)), ""}
	for _, l := range render.Wrap(m.message, inner) {
		lines = append(lines, s.Base.Render(l))
	}
	hint := render.TruncateEllipsis("enter/y confirm · esc/n cancel", inner)
	lines = append(lines, "", s.Subtle.Render(hint))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
