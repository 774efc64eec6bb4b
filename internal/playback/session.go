// Package playback implements the sequential affirmation player: a position
// store advanced by a timer while playing and by the user's scrolling while
// paused, with a seek bridge that keeps the display in sync.
package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/llehouerou/affirm/internal/sequence"
)

// Options configures a session.
type Options struct {
	Interval   time.Duration // auto-advance period; DefaultInterval if zero
	RetryDelay time.Duration // seek retry delay; DefaultRetryDelay if zero
	StartIndex int           // initial position; out of range means 0

	// PlaylistID and Title describe the content for outer surfaces.
	PlaylistID string
	Title      string

	// Logger receives engine diagnostics. The zero value discards them.
	Logger zerolog.Logger
}

// Stats counts what the engine did. Used by tests and the debug log.
type Stats struct {
	Ticks       int // auto-advance ticks that acted
	Suppressed  int // visibility events ignored while playing
	SeekRetries int // retries performed
	SeekDrops   int // seeks abandoned after the retry failed
}

// Info describes what a session is playing.
type Info struct {
	ID         string
	PlaylistID string
	Title      string
}

// Session is one player session over a fixed sequence.
// All methods are safe for concurrent use.
type Session struct {
	info Info
	seq  sequence.Sequence
	log  zerolog.Logger

	mu     sync.Mutex
	store  positionStore
	timer  autoAdvance
	bridge seekBridge
	stats  Stats
	closed bool

	subsMu     sync.Mutex
	subs       []*Subscription
	subsClosed bool
}

// NewSession opens a session paused at opts.StartIndex. A non-zero start
// index is pushed to the display with an unanimated seek.
func NewSession(seq sequence.Sequence, seeker Seeker, opts Options) *Session {
	s := &Session{
		info: Info{
			ID:         uuid.NewString(),
			PlaylistID: opts.PlaylistID,
			Title:      opts.Title,
		},
		seq:    seq,
		store:  newPositionStore(seq.Len(), opts.StartIndex),
		timer:  newAutoAdvance(opts.Interval),
		bridge: newSeekBridge(seeker, opts.RetryDelay),
	}
	s.log = opts.Logger.With().
		Str("session", s.info.ID).
		Str("playlist", opts.PlaylistID).
		Logger()

	s.log.Debug().
		Int("items", seq.Len()).
		Int("start", s.store.index).
		Dur("interval", s.timer.interval).
		Msg("session opened")

	if s.store.index != 0 {
		s.mu.Lock()
		s.seekLocked(seekRequest{index: s.store.index, animated: false})
		s.mu.Unlock()
	}
	return s
}

// Info returns the session's identity.
func (s *Session) Info() Info {
	return s.info
}

// Sequence returns the items this session plays.
func (s *Session) Sequence() sequence.Sequence {
	return s.seq
}

// State returns a snapshot of position and transport state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.snapshot()
}

// Index returns the current position.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.index
}

// IsPlaying returns true while auto-advance is running.
func (s *Session) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.playing
}

// Current returns the item at the current position, or false when the
// sequence is empty.
func (s *Session) Current() (sequence.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.At(s.store.index)
}

// Stats returns engine counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// TogglePlayPause flips the playing state. Starting from the last item first
// rewinds to index 0 and seeks there, so play never re-finishes immediately.
func (s *Session) TogglePlayPause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.store.playing {
		s.stopLocked(StopPaused)
		return
	}
	s.playLocked()
}

// Play starts auto-advance if it is not running.
func (s *Session) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.store.playing {
		return
	}
	s.playLocked()
}

// Pause stops auto-advance if it is running.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.store.playing {
		return
	}
	s.stopLocked(StopPaused)
}

// ObserveVisible reports that the user's scroll settled on index. The index
// is adopted only while paused; while playing the timer is the sole writer
// and the event is dropped. It never seeks. Returns whether the index moved.
func (s *Session) ObserveVisible(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if s.store.playing {
		s.stats.Suppressed++
		s.log.Debug().Int("index", index).Msg("visibility ignored while playing")
		return false
	}
	prev := s.store.index
	if !s.store.setIndex(index) || prev == index {
		return false
	}
	s.emitIndex(IndexChange{Previous: prev, Current: index, Cause: CauseVisible})
	return true
}

// SeekTo moves to index and tells the display to follow. Out-of-range
// indexes are ignored. Returns whether the index was accepted.
func (s *Session) SeekTo(index int, animated bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.seq.Valid(index) {
		return false
	}
	s.seekLocked(seekRequest{index: index, animated: animated})
	prev := s.store.index
	s.store.setIndex(index)
	if prev != index {
		s.emitIndex(IndexChange{Previous: prev, Current: index, Cause: CauseSeek})
	}
	return true
}

// Close tears the session down: the timer and any pending seek retry are
// cleared and subscribers are released. Safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	wasPlaying := s.store.playing
	s.store.playing = false
	s.timer.stop()
	s.bridge.cancel()
	s.closed = true
	idx := s.store.index
	s.mu.Unlock()

	if wasPlaying {
		s.emitState(StateChange{Playing: false, Index: idx, Reason: StopClosed})
	}
	s.log.Debug().Int("index", idx).Msg("session closed")

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsClosed = true
	s.subsMu.Unlock()
	return nil
}

// Subscribe creates a new event subscription. Subscribing to a closed
// session returns a subscription whose Done channel is already closed.
func (s *Session) Subscribe() *Subscription {
	sub := newSubscription()
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	// Close releases subscribers after dropping mu, so mu alone cannot
	// tell whether this one would be missed.
	if s.subsClosed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

func (s *Session) playLocked() {
	if s.seq.IsEmpty() {
		s.log.Debug().Msg("play on empty sequence")
		s.emitFinished(Finished{Index: 0})
		return
	}
	if s.store.snapshot().AtEnd() {
		prev := s.store.index
		s.store.setIndex(0)
		s.seekLocked(seekRequest{index: 0, animated: true})
		if prev != 0 {
			s.emitIndex(IndexChange{Previous: prev, Current: 0, Cause: CauseRestart})
		}
	}
	s.store.playing = true
	s.timer.start(s.tick)
	s.emitState(StateChange{Playing: true, Index: s.store.index})
}

func (s *Session) stopLocked(reason StopReason) {
	s.store.playing = false
	s.timer.stop()
	s.bridge.cancel()
	s.emitState(StateChange{Playing: false, Index: s.store.index, Reason: reason})
	if reason == StopFinished {
		s.log.Debug().Int("index", s.store.index).Msg("sequence finished")
		s.emitFinished(Finished{Index: s.store.index})
	}
}

// tick is the auto-advance timer callback.
func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.store.playing || !s.timer.owns(gen) {
		return
	}
	next := s.store.index + 1
	if !s.seq.Valid(next) {
		s.stopLocked(StopFinished)
		return
	}
	s.stats.Ticks++
	s.seekLocked(seekRequest{index: next, animated: true})
	prev := s.store.index
	s.store.setIndex(next)
	s.emitIndex(IndexChange{Previous: prev, Current: next, Cause: CauseTick})
	s.timer.rearm(s.tick)
}

func (s *Session) seekLocked(req seekRequest) {
	if err := s.bridge.seek(req, s.retrySeek); err != nil {
		s.log.Debug().Err(err).Int("index", req.index).Msg("seek failed, retrying")
	}
}

// retrySeek is the seek bridge's single retry callback.
func (s *Session) retrySeek(gen uint64, req seekRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	done, err := s.bridge.retryOnce(gen, req)
	if !done {
		return
	}
	s.stats.SeekRetries++
	if err == nil {
		return
	}
	s.stats.SeekDrops++
	s.log.Warn().Err(err).Int("index", req.index).Msg("seek dropped after retry")
	s.emitError(ErrorEvent{Operation: "seek", Index: req.index, Err: err})
}

func (s *Session) forEachSub(fn func(*Subscription)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

func (s *Session) emitIndex(e IndexChange) {
	s.forEachSub(func(sub *Subscription) { sub.sendIndex(e) })
}

func (s *Session) emitState(e StateChange) {
	s.forEachSub(func(sub *Subscription) { sub.sendState(e) })
}

func (s *Session) emitFinished(e Finished) {
	s.forEachSub(func(sub *Subscription) { sub.sendFinished(e) })
}

func (s *Session) emitError(e ErrorEvent) {
	s.forEachSub(func(sub *Subscription) { sub.sendError(e) })
}
