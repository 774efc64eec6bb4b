package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestGradient_Steps(t *testing.T) {
	g := NewGradient("#ff0000", "#0000ff")

	steps := g.Steps(3)
	if len(steps) != 3 {
		t.Fatalf("len(Steps(3)) = %d", len(steps))
	}
	if steps[0] != "#ff0000" || steps[2] != "#0000ff" {
		t.Errorf("ends = %s..%s, want #ff0000..#0000ff", steps[0], steps[2])
	}
	if got := g.Steps(1); len(got) != 1 || got[0] != "#ff0000" {
		t.Errorf("Steps(1) = %v", got)
	}
	if g.Steps(0) != nil {
		t.Error("Steps(0) should be nil")
	}
}

func TestGradient_AtClamps(t *testing.T) {
	g := NewGradient("#102030", "#405060")
	if g.At(-1) != g.At(0) || g.At(2) != g.At(1) {
		t.Error("At should clamp t to [0, 1]")
	}
}

func TestNewGradient_NonHexIsNeutral(t *testing.T) {
	g := NewGradient(lipgloss.Color("5"), lipgloss.Color("#808080"))
	if g.From != neutral {
		t.Errorf("From = %v, want neutral", g.From)
	}
}

func TestPaint_KeepsText(t *testing.T) {
	for _, text := range []string{"", "a", "Calm 🧘 mind", "café"} {
		got := ansi.Strip(Brand(text))
		if got != text {
			t.Errorf("Brand(%q) stripped = %q", text, got)
		}
	}
}

func TestTint_FallsBackToBrand(t *testing.T) {
	if Tint("Sleep", "") != Brand("Sleep") {
		t.Error("Tint without a color should match Brand")
	}
	if got := ansi.Strip(Tint("Sleep", "#F472B6")); got != "Sleep" {
		t.Errorf("Tint stripped = %q", got)
	}
}

func TestGradientRule(t *testing.T) {
	if GradientRule(0, 0) != "" {
		t.Error("zero width should render nothing")
	}
	rule := ansi.Strip(GradientRule(10, 4))
	if rule != strings.Repeat("━", 4)+strings.Repeat("─", 6) {
		t.Errorf("rule = %q", rule)
	}
	if ansi.Strip(GradientRule(5, 99)) != strings.Repeat("━", 5) {
		t.Error("filled should clamp to width")
	}
}
