package playback

import (
	"errors"
	"time"
)

// DefaultRetryDelay is how long the seek bridge waits before its single retry.
const DefaultRetryDelay = 500 * time.Millisecond

// ErrNotMeasured is returned by a Seeker asked to show an item it has not
// laid out yet.
var ErrNotMeasured = errors.New("display has not measured target item")

// Seeker is the display surface: it scrolls or snaps to the item at index.
// Implementations must not call back into the session synchronously.
type Seeker interface {
	SeekTo(index int, animated bool) error
}

// SeekerFunc adapts a function to the Seeker interface.
type SeekerFunc func(index int, animated bool) error

// SeekTo implements Seeker.
func (f SeekerFunc) SeekTo(index int, animated bool) error {
	return f(index, animated)
}

type seekRequest struct {
	index    int
	animated bool
}

// seekBridge forwards seeks to the display and retries a failed one exactly
// once after a fixed delay. Like autoAdvance it relies on the session mutex.
type seekBridge struct {
	seeker Seeker
	delay  time.Duration
	retry  *time.Timer
	gen    uint64
}

func newSeekBridge(seeker Seeker, delay time.Duration) seekBridge {
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	return seekBridge{seeker: seeker, delay: delay}
}

// seek issues req, superseding any pending retry. On failure it arms one
// retry that will call onRetry with the gen it was armed with.
func (b *seekBridge) seek(req seekRequest, onRetry func(gen uint64, req seekRequest)) error {
	b.cancel()
	if b.seeker == nil {
		return nil
	}
	err := b.seeker.SeekTo(req.index, req.animated)
	if err == nil {
		return nil
	}
	gen := b.gen
	b.retry = time.AfterFunc(b.delay, func() { onRetry(gen, req) })
	return err
}

// retryOnce performs the armed retry if it is still current. The returned
// error is final: no further retry is scheduled.
func (b *seekBridge) retryOnce(gen uint64, req seekRequest) (bool, error) {
	if gen != b.gen || b.retry == nil {
		return false, nil
	}
	b.retry = nil
	b.gen++
	if b.seeker == nil {
		return true, nil
	}
	return true, b.seeker.SeekTo(req.index, req.animated)
}

// cancel drops any pending retry. Safe to call when none is pending.
func (b *seekBridge) cancel() {
	if b.retry != nil {
		b.retry.Stop()
		b.retry = nil
	}
	b.gen++
}

func (b *seekBridge) pending() bool {
	return b.retry != nil
}
