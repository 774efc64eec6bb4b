// internal/state/mock.go
package state

import "sync"

// Mock is a test double for Manager. Saves apply immediately.
type Mock struct {
	mu     sync.Mutex
	ui     *UIState
	saves  int
	closed bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveUI(state UIState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ui = &state
	m.saves++
}

func (m *Mock) GetUI() (*UIState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ui == nil {
		return nil, nil //nolint:nilnil // mirrors Manager on first run
	}
	s := *m.ui
	return &s, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetUI(state *UIState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ui = state
}

func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
