package playback

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/llehouerou/affirm/internal/sequence"
)

// ErrNoSession is returned by Host operations that need an open session.
var ErrNoSession = errors.New("no player session open")

// OpenRequest describes the session to open on a Host.
type OpenRequest struct {
	PlaylistID string
	Title      string
	Sequence   sequence.Sequence
	StartIndex int
	Seeker     Seeker
}

// Host owns the one player session shared by every screen. Opening a new
// session closes the previous one. The zero value is not usable; call
// NewHost.
type Host struct {
	defaults Options
	log      zerolog.Logger

	mu      sync.Mutex
	session *Session
	opened  chan *Session
}

// NewHost creates a host. defaults supplies Interval, RetryDelay and Logger
// for every session it opens.
func NewHost(defaults Options) *Host {
	return &Host{
		defaults: defaults,
		log:      defaults.Logger,
		opened:   make(chan *Session, 1),
	}
}

// Open closes the current session, if any, and opens a new one.
func (h *Host) Open(req OpenRequest) *Session {
	opts := h.defaults
	opts.PlaylistID = req.PlaylistID
	opts.Title = req.Title
	opts.StartIndex = req.StartIndex

	s := NewSession(req.Sequence, req.Seeker, opts)

	h.mu.Lock()
	prev := h.session
	h.session = s
	// Keep only the latest session for Opened listeners.
	select {
	case <-h.opened:
	default:
	}
	h.opened <- s
	h.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}

	h.log.Info().
		Str("playlist", req.PlaylistID).
		Int("items", req.Sequence.Len()).
		Msg("player session opened")
	return s
}

// Opened delivers sessions as they are opened. Only the most recent unread
// session is kept.
func (h *Host) Opened() <-chan *Session {
	return h.opened
}

// Current returns the open session.
func (h *Host) Current() (*Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil {
		return nil, false
	}
	return h.session, true
}

// TogglePlayPause toggles the open session.
func (h *Host) TogglePlayPause() error {
	s, ok := h.Current()
	if !ok {
		return ErrNoSession
	}
	s.TogglePlayPause()
	return nil
}

// Close closes the open session. Safe to call with no session open.
func (h *Host) Close() error {
	h.mu.Lock()
	s := h.session
	h.session = nil
	h.mu.Unlock()

	if s == nil {
		return nil
	}
	return s.Close()
}
