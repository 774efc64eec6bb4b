// Package stderr moves writes to file descriptor 2 into the log while the
// TUI owns the terminal. Libraries that print directly to stderr would
// otherwise draw over the alternate screen.
package stderr

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Capture forwards captured lines to a logger until stopped.
type Capture struct {
	log     zerolog.Logger
	restore func() error
	done    chan struct{}
	once    sync.Once
}

// forward logs every non-blank line read from r until it is closed.
func (c *Capture) forward(r io.Reader) {
	defer close(c.done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			c.log.Warn().Str("source", "stderr").Msg(line)
		}
	}
}

// Stop restores the original stderr and waits for buffered lines to be
// logged. Safe to call more than once and on a nil Capture.
func (c *Capture) Stop() error {
	if c == nil {
		return nil
	}
	var err error
	c.once.Do(func() {
		err = c.restore()
		<-c.done
	})
	return err
}
