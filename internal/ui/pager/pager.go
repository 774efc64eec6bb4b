// Package pager is the player's display surface: one affirmation per page,
// scrolled with a spring animation. It implements playback.Seeker and reports
// the page the user settles on.
package pager

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/affirm/internal/playback"
	"github.com/llehouerou/affirm/internal/sequence"
)

const (
	fps = 60

	// A page counts as visible once this fraction of it is on screen.
	visibleThreshold = 0.5

	restEpsilon = 0.002
)

// ErrOutOfRange is returned for seeks past either end of the sequence.
var ErrOutOfRange = errors.New("page index out of range")

var nextID atomic.Uint64

// FrameMsg advances the scroll animation by one frame.
type FrameMsg struct {
	ID  uint64
	Gen uint64
}

// SeekedMsg is delivered after SeekTo was called from outside the program.
type SeekedMsg struct {
	ID uint64
}

// VisibleMsg reports the page on screen once scrolling came to rest.
type VisibleMsg struct {
	ID    uint64
	Index int
}

// Pager renders a sequence as full-height pages.
// All methods are safe for concurrent use; SeekTo is called from the
// playback engine's timer goroutines.
type Pager struct {
	id     uint64
	items  []sequence.Item
	spring harmonica.Spring
	seeked chan SeekedMsg
	done   chan struct{}
	once   sync.Once

	mu        sync.Mutex
	width     int
	height    int
	pos       float64 // scroll position in pages
	vel       float64
	target    int
	animating bool
	gen       uint64
	reported  int
}

// New creates a pager over items. It reports ErrNotMeasured to seeks until
// SetSize gives it a non-empty area.
func New(items []sequence.Item) *Pager {
	return &Pager{
		id:     nextID.Add(1),
		items:  items,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 7.0, 1.0),
		seeked: make(chan SeekedMsg, 1),
		done:   make(chan struct{}),
	}
}

// ID distinguishes this pager's messages from those of a replaced pager.
func (p *Pager) ID() uint64 {
	return p.id
}

// Len returns the number of pages.
func (p *Pager) Len() int {
	return len(p.items)
}

// SetSize lays the pages out in a width x height area.
func (p *Pager) SetSize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = width
	p.height = height
}

// Size returns the laid-out area.
func (p *Pager) Size() (width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

func (p *Pager) measuredLocked() bool {
	return p.width > 0 && p.height > 0
}

// SeekTo implements playback.Seeker. Animated seeks glide to the page,
// others jump. The program is woken through Seeked.
func (p *Pager) SeekTo(index int, animated bool) error {
	p.mu.Lock()
	if !p.measuredLocked() {
		p.mu.Unlock()
		return playback.ErrNotMeasured
	}
	if index < 0 || index >= len(p.items) {
		p.mu.Unlock()
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, index, len(p.items))
	}
	p.target = index
	if !animated {
		p.pos = float64(index)
		p.vel = 0
	}
	p.mu.Unlock()

	select {
	case p.seeked <- SeekedMsg{ID: p.id}:
	default:
	}
	return nil
}

// Seeked delivers a message after each external seek. Only one pending
// notice is kept.
func (p *Pager) Seeked() <-chan SeekedMsg {
	return p.seeked
}

// WaitSeeked returns a command that blocks until the next external seek.
// It yields nil once the pager is closed.
func (p *Pager) WaitSeeked() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-p.seeked:
			return msg
		case <-p.done:
			return nil
		}
	}
}

// Close releases WaitSeeked waiters and stops the animation. Safe to call
// more than once.
func (p *Pager) Close() {
	p.once.Do(func() { close(p.done) })
	p.mu.Lock()
	p.animating = false
	p.gen++
	p.mu.Unlock()
}

// ScrollBy moves the target by delta pages, as a user scroll does. The
// result is clamped to the sequence.
func (p *Pager) ScrollBy(delta int) tea.Cmd {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.items) == 0 {
		return nil
	}
	p.target = max(0, min(p.target+delta, len(p.items)-1))
	return p.kickLocked()
}

// ScrollTo moves the target to index with animation, as a user jump does.
func (p *Pager) ScrollTo(index int) tea.Cmd {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.items) {
		return nil
	}
	p.target = index
	return p.kickLocked()
}

// Update handles the pager's own messages.
func (p *Pager) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SeekedMsg:
		if msg.ID != p.id {
			return nil
		}
		p.mu.Lock()
		cmd := p.kickLocked()
		p.mu.Unlock()
		return tea.Batch(cmd, p.WaitSeeked())
	case FrameMsg:
		if msg.ID != p.id {
			return nil
		}
		return p.frame(msg.Gen)
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return p.ScrollBy(-1)
		case tea.MouseButtonWheelDown:
			return p.ScrollBy(1)
		}
	}
	return nil
}

// kickLocked starts the frame loop if the position is not at the target,
// or reports visibility if it already is.
func (p *Pager) kickLocked() tea.Cmd {
	if p.atRestLocked() {
		p.pos = float64(p.target)
		p.vel = 0
		p.animating = false
		return p.reportLocked()
	}
	if p.animating {
		return nil
	}
	p.animating = true
	p.gen++
	return p.frameCmd(p.gen)
}

func (p *Pager) frameCmd(gen uint64) tea.Cmd {
	id := p.id
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen}
	})
}

func (p *Pager) frame(gen uint64) tea.Cmd {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.animating || gen != p.gen {
		return nil
	}
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, float64(p.target))
	if p.atRestLocked() {
		p.pos = float64(p.target)
		p.vel = 0
		p.animating = false
		return p.reportLocked()
	}
	return p.frameCmd(gen)
}

func (p *Pager) atRestLocked() bool {
	return math.Abs(p.pos-float64(p.target)) < restEpsilon && math.Abs(p.vel) < restEpsilon
}

// reportLocked emits a VisibleMsg when the visible page differs from the
// last one reported.
func (p *Pager) reportLocked() tea.Cmd {
	idx := p.visibleLocked()
	if idx < 0 || idx == p.reported {
		return nil
	}
	p.reported = idx
	id := p.id
	return func() tea.Msg {
		return VisibleMsg{ID: id, Index: idx}
	}
}

// visibleLocked returns the page covering at least visibleThreshold of the
// viewport, or -1 when there are no pages.
func (p *Pager) visibleLocked() int {
	if len(p.items) == 0 {
		return -1
	}
	base := math.Floor(p.pos)
	frac := p.pos - base
	idx := int(base)
	if frac > visibleThreshold {
		idx++
	}
	return max(0, min(idx, len(p.items)-1))
}

// Visible returns the page currently on screen.
func (p *Pager) Visible() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visibleLocked()
}

// Target returns the page the pager is moving to.
func (p *Pager) Target() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

// Animating reports whether a scroll is in flight.
func (p *Pager) Animating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.animating
}

// Position returns the fractional scroll position in pages.
func (p *Pager) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}
