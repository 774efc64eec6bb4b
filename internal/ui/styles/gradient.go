package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not "#rrggbb", such as ANSI indexes.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient is a two-stop color ramp blended in HCL space.
type Gradient struct {
	From, To colorful.Color
}

// NewGradient builds a gradient between two hex colors.
func NewGradient(from, to lipgloss.Color) Gradient {
	return Gradient{From: parseHex(from), To: parseHex(to)}
}

// At returns the color at position t in [0, 1].
func (g Gradient) At(t float64) lipgloss.Color {
	t = max(0, min(t, 1))
	return lipgloss.Color(g.From.BlendHcl(g.To, t).Clamped().Hex())
}

// Steps returns n colors evenly spread from From to To.
func (g Gradient) Steps(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{g.At(0)}
	}
	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out
}

// Paint colors text one grapheme at a time along the gradient.
func (g Gradient) Paint(text string, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	var b strings.Builder
	for i, c := range g.Steps(len(clusters)) {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(bold).Render(clusters[i]))
	}
	return b.String()
}

// Brand renders text with the theme's primary-to-secondary gradient, the
// terminal stand-in for the app's gradient buttons and headers.
func Brand(text string) string {
	t := T()
	return NewGradient(t.Primary, t.Secondary).Paint(text, true)
}

// Tint renders a heading fading from a category color into the theme's
// secondary color. Without a color it falls back to Brand.
func Tint(text, color string) string {
	if color == "" {
		return Brand(text)
	}
	return NewGradient(lipgloss.Color(color), T().Secondary).Paint(text, true)
}

// GradientRule renders a horizontal line of width cells fading from the
// primary to the accent color. filled cells are drawn solid, the rest dim.
func GradientRule(width, filled int) string {
	if width <= 0 {
		return ""
	}
	filled = max(0, min(filled, width))
	t := T()
	var b strings.Builder
	for i, c := range NewGradient(t.Primary, t.Accent).Steps(width) {
		if i < filled {
			b.WriteString(lipgloss.NewStyle().Foreground(c).Render("━"))
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(t.FgSubtle).Render("─"))
	}
	return b.String()
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
