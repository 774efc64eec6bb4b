package notify

import "testing"

func TestUrgencyValues(t *testing.T) {
	// Values are fixed by the freedesktop notification spec.
	if UrgencyLow != 0 || UrgencyNormal != 1 || UrgencyCritical != 2 {
		t.Errorf("urgency values = %d %d %d, want 0 1 2", UrgencyLow, UrgencyNormal, UrgencyCritical)
	}
}

func TestSessionComplete(t *testing.T) {
	tests := []struct {
		name  string
		count int
		body  string
	}{
		{"many", 25, "25 affirmations played"},
		{"one", 1, "1 affirmation played"},
		{"empty", 0, "Nothing to play in this playlist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := SessionComplete("Mindful Moments", tt.count)
			if n.Title != "Session complete: Mindful Moments" {
				t.Errorf("Title = %q", n.Title)
			}
			if n.Body != tt.body {
				t.Errorf("Body = %q, want %q", n.Body, tt.body)
			}
			if n.Urgency != UrgencyLow || n.Timeout <= 0 {
				t.Errorf("urgency/timeout = %d/%d", n.Urgency, n.Timeout)
			}
		})
	}
}

func TestDisabled(t *testing.T) {
	var n Notifier = Disabled{}
	id, err := n.Notify(SessionComplete("x", 1))
	if id != 0 || err != nil {
		t.Errorf("Notify = %d, %v", id, err)
	}
	if err := n.Close(1); err != nil {
		t.Errorf("Close = %v", err)
	}
}
