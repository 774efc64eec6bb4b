//go:build linux

package stderr

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// Start redirects fd 2 into a pipe read by log. On failure stderr is left
// untouched and the error returned; the program can go on without capture.
func Start(log zerolog.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	fd := int(os.Stderr.Fd())
	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	if err := unix.Dup3(int(w.Fd()), fd, 0); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{log: log, done: make(chan struct{})}
	c.restore = func() error {
		err := unix.Dup3(orig, fd, 0)
		unix.Close(orig)
		// fd 2 no longer refers to the pipe; closing w ends forward.
		w.Close()
		return err
	}
	go func() {
		c.forward(r)
		r.Close()
	}()
	return c, nil
}
