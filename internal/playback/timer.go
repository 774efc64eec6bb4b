package playback

import "time"

// DefaultInterval is the time each affirmation stays on screen while playing.
const DefaultInterval = 2 * time.Second

type timerState int

const (
	timerIdle timerState = iota
	timerRunning
)

// autoAdvance owns the tick timer. It is not safe for concurrent use; the
// session serializes every call under its mutex.
//
// Each start bumps gen, and callbacks carry the gen they were armed with, so
// a callback that lost the race with stop (time.Timer.Stop cannot recall a
// callback already running) finds a stale gen and does nothing.
type autoAdvance struct {
	interval time.Duration
	state    timerState
	handle   *time.Timer
	gen      uint64
}

func newAutoAdvance(interval time.Duration) autoAdvance {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return autoAdvance{interval: interval}
}

// start moves Idle → Running and arms the first tick.
func (a *autoAdvance) start(fire func(gen uint64)) {
	a.stop()
	a.gen++
	a.state = timerRunning
	a.arm(fire)
}

// rearm schedules the next tick of the current run.
func (a *autoAdvance) rearm(fire func(gen uint64)) {
	if a.state != timerRunning {
		return
	}
	a.arm(fire)
}

func (a *autoAdvance) arm(fire func(gen uint64)) {
	gen := a.gen
	a.handle = time.AfterFunc(a.interval, func() { fire(gen) })
}

// stop moves to Idle and clears the handle. Safe to call when Idle.
func (a *autoAdvance) stop() {
	if a.handle != nil {
		a.handle.Stop()
		a.handle = nil
	}
	if a.state == timerRunning {
		a.gen++
	}
	a.state = timerIdle
}

// owns reports whether a callback armed with gen may still act.
func (a *autoAdvance) owns(gen uint64) bool {
	return a.state == timerRunning && gen == a.gen
}

func (a *autoAdvance) running() bool {
	return a.state == timerRunning
}
