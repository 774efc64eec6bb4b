package stderr

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestCapture_ForwardLogsLines(t *testing.T) {
	var buf bytes.Buffer
	c := &Capture{log: zerolog.New(&buf), done: make(chan struct{})}

	c.forward(strings.NewReader("first\n\n   \nsecond line\n"))

	out := buf.String()
	if got := strings.Count(out, `"source":"stderr"`); got != 2 {
		t.Fatalf("logged %d lines, want 2: %s", got, out)
	}
	for _, want := range []string{`"message":"first"`, `"message":"second line"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s", want)
		}
	}
}

func TestCapture_StopRestoresOnce(t *testing.T) {
	r, w := io.Pipe()
	restores := 0
	c := &Capture{log: zerolog.Nop(), done: make(chan struct{})}
	c.restore = func() error {
		restores++
		return w.Close()
	}
	go c.forward(r)

	if err := c.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := c.Stop(); err != nil {
		t.Fatalf("second Stop() error = %v", err)
	}
	if restores != 1 {
		t.Errorf("restore called %d times, want 1", restores)
	}
}

func TestCapture_NilStop(t *testing.T) {
	var c *Capture
	if err := c.Stop(); err != nil {
		t.Errorf("Stop() on nil = %v", err)
	}
}
