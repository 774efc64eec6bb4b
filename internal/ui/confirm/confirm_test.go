package confirm

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/affirm/internal/ui/testutil"
)

const testContext = "ctx"

func newTestConfirm(title, message string, context any) Model {
	m := New()
	m.Show(title, message, context)
	return m
}

func getResult(t *testing.T, cmd tea.Cmd) ResultMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	result, ok := cmd().(ResultMsg)
	if !ok {
		t.Fatalf("expected ResultMsg, got %T", cmd())
	}
	return result
}

func TestConfirmKeys(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"enter", true},
		{"y", true},
		{"Y", true},
		{"esc", false},
		{"n", false},
		{"N", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestConfirm("Clear history?", "Recent sessions will be forgotten.", testContext)

			m, cmd := m.Update(testutil.KeyMsg(tt.key))

			result := getResult(t, cmd)
			if result.Confirmed != tt.want {
				t.Errorf("Confirmed = %v, want %v", result.Confirmed, tt.want)
			}
			if result.Context != testContext {
				t.Errorf("Context = %v, want %q", result.Context, testContext)
			}
			if m.Active() {
				t.Error("dialog should close after an answer")
			}
		})
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	m := newTestConfirm("Clear history?", "Sure?", nil)

	m, cmd := m.Update(testutil.KeyMsg("x"))

	if cmd != nil {
		t.Error("expected no command for an unrelated key")
	}
	if !m.Active() {
		t.Error("dialog should stay open")
	}
}

func TestInactiveIgnoresKeys(t *testing.T) {
	m := New()
	if _, cmd := m.Update(testutil.KeyMsg("enter")); cmd != nil {
		t.Error("inactive dialog should not answer")
	}
	if m.View(80) != "" {
		t.Error("inactive dialog should render nothing")
	}
}

func TestView(t *testing.T) {
	m := newTestConfirm("Clear history?", "Recent sessions will be forgotten.", nil)
	view := testutil.StripANSI(m.View(80))

	for _, want := range []string{"Clear history?", "Recent sessions", "esc/n cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewFitsWidth(t *testing.T) {
	m := newTestConfirm("Clear history?", "Recent sessions will be forgotten.", nil)
	for _, width := range []int{80, 30, 12, 7} {
		for _, line := range strings.Split(m.View(width), "\n") {
			if w := testutil.MeasureWidth(line); w > width {
				t.Errorf("View(%d): line width %d: %q", width, w, testutil.StripANSI(line))
			}
		}
	}
	if m.View(6) != "" {
		t.Error("no room for text should render nothing")
	}
}
