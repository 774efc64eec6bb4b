package playback

import "sync"

// SeekCall records one SeekTo invocation on a MockSeeker.
type SeekCall struct {
	Index    int
	Animated bool
}

// MockSeeker is a Seeker test double that records calls and can be told to
// fail.
type MockSeeker struct {
	mu    sync.Mutex
	calls []SeekCall
	fails int
	err   error
}

// NewMockSeeker creates a seeker that always succeeds.
func NewMockSeeker() *MockSeeker {
	return &MockSeeker{err: ErrNotMeasured}
}

// SeekTo implements Seeker.
func (m *MockSeeker) SeekTo(index int, animated bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, SeekCall{Index: index, Animated: animated})
	if m.fails > 0 {
		m.fails--
		return m.err
	}
	return nil
}

// FailNext makes the next n calls return ErrNotMeasured.
func (m *MockSeeker) FailNext(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fails = n
}

// Calls returns a copy of the recorded calls.
func (m *MockSeeker) Calls() []SeekCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]SeekCall, len(m.calls))
	copy(result, m.calls)
	return result
}

// Last returns the most recent call and true, or false if none.
func (m *MockSeeker) Last() (SeekCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return SeekCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}

// Reset forgets recorded calls.
func (m *MockSeeker) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// Verify MockSeeker implements Seeker at compile time.
var _ Seeker = (*MockSeeker)(nil)
