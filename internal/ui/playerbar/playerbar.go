// Package playerbar renders the mini player shown under every browse screen
// while a session is open.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/playback"
	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// Height is the bar height: top border + content + bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Open    bool
	Playing bool
	Title   string // playlist title
	Text    string // current affirmation
	Index   int
	Len     int
}

// NewState snapshots a session. A nil or closed session yields a closed bar.
func NewState(s *playback.Session) State {
	if s == nil || s.Closed() {
		return State{}
	}
	st := s.State()
	item, _ := s.Current()
	return State{
		Open:    true,
		Playing: st.Playing,
		Title:   s.Info().Title,
		Text:    item.Text,
		Index:   st.Index,
		Len:     st.Len,
	}
}

// Position formats the "i / N" indicator, 1-based.
func (s State) Position() string {
	if s.Len == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", s.Index+1, s.Len)
}

// Ratio is how far through the sequence the current item is.
func (s State) Ratio() float64 {
	if s.Len <= 1 {
		if s.Len == 1 {
			return 1
		}
		return 0
	}
	return float64(s.Index) / float64(s.Len-1)
}

// Finished reports a paused session resting on its last item.
func (s State) Finished() bool {
	return !s.Playing && s.Len > 0 && s.Index == s.Len-1
}

func newBar(width int) progress.Model {
	t := styles.T()
	bar := progress.New(
		progress.WithGradient(string(t.Primary), string(t.Accent)),
		progress.WithoutPercentage(),
	)
	bar.Width = width
	bar.Full = '━'
	bar.Empty = '─'
	bar.EmptyColor = string(t.FgSubtle)
	return bar
}

// Render returns the player bar for width, or "" when no session is open.
func Render(s State, width int) string {
	if !s.Open || width < 20 {
		return ""
	}
	innerWidth := width - 6
	st := styles.T().S()

	status := icons.Transport(s.Playing)
	if s.Finished() {
		status = icons.Finished()
	}
	pos := s.Position()

	// Title · text   ▶ ━━━━──── 3 / 25
	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(pos) + 2
	barWidth := max(min(innerWidth/4, 30), 5)
	textSpace := max(innerWidth-fixed-barWidth-3, 0)

	title := render.Sanitize(s.Title)
	text := render.Sanitize(s.Text)
	var label string
	switch {
	case lipgloss.Width(title)+3+lipgloss.Width(text) <= textSpace:
		label = st.Title.Render(title) + st.Muted.Render(" · "+text)
	case lipgloss.Width(title)+3 < textSpace:
		rest := textSpace - lipgloss.Width(title) - 3
		label = st.Title.Render(title) + st.Muted.Render(" · "+render.TruncateEllipsis(text, rest))
	default:
		label = st.Title.Render(render.TruncateEllipsis(title, textSpace))
	}
	label = render.Pad(label, textSpace)

	var b strings.Builder
	b.WriteString(label)
	b.WriteString("   ")
	b.WriteString(st.Active.Render(status))
	b.WriteString("  ")
	b.WriteString(newBar(barWidth).ViewAs(s.Ratio()))
	b.WriteString("  ")
	b.WriteString(st.Muted.Render(pos))

	return barStyle().Padding(0, 2).Width(width - 2).Render(b.String())
}
