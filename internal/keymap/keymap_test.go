//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		context string
		minLen  int
	}{
		{ContextGlobal, 5},
		{ContextBrowse, 5},
		{ContextDetail, 4},
		{ContextPlayer, 5},
		{ContextSearch, 3},
		{"unknown", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			got := ByContext(tt.context)
			if len(got) < tt.minLen {
				t.Errorf("ByContext(%q) = %d bindings, want >= %d", tt.context, len(got), tt.minLen)
			}
			if tt.minLen == 0 && len(got) != 0 {
				t.Errorf("ByContext(%q) = %d bindings, want none", tt.context, len(got))
			}
			for _, b := range got {
				if b.Context != tt.context {
					t.Errorf("binding %v has context %q", b.Keys, b.Context)
				}
			}
		})
	}
}

func TestAllBindingsComplete(t *testing.T) {
	for _, b := range All {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Description)
		}
		if b.Action == "" {
			t.Errorf("binding %v has no action", b.Keys)
		}
		if b.Description == "" {
			t.Errorf("binding %v has no description", b.Keys)
		}
	}
}

func TestNoDuplicateKeysWithinContext(t *testing.T) {
	seen := map[string]map[string]bool{}
	for _, b := range All {
		if seen[b.Context] == nil {
			seen[b.Context] = map[string]bool{}
		}
		for _, k := range b.Keys {
			if seen[b.Context][k] {
				t.Errorf("key %q bound twice in %s", k, b.Context)
			}
			seen[b.Context][k] = true
		}
	}
}

func TestHelpKeys(t *testing.T) {
	keys := HelpKeys(ContextPlayer)
	if len(keys) != len(ByContext(ContextPlayer)) {
		t.Fatalf("HelpKeys returned %d bindings", len(keys))
	}
	if got := keys[0].Help().Key; got != "space" {
		t.Errorf("first player help key = %q, want space", got)
	}
	if got := keys[0].Help().Desc; got != "Play/pause" {
		t.Errorf("first player help desc = %q", got)
	}
}
