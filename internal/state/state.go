// Package state persists what the interface should look like on the next
// start: the open tab, the explore filter and the settings toggles.
package state

import (
	"database/sql"
	"sync"
	"time"
)

const saveDebounce = 500 * time.Millisecond

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *UIState
}

// New creates a manager on db, usually the catalog's database, creating
// its table if needed. The database stays owned by the caller.
func New(db *sql.DB) (*Manager, error) {
	if err := initSchema(db); err != nil {
		return nil, err
	}
	return &Manager{db: db}, nil
}

// Close flushes a pending save.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		return saveUI(m.db, *pending)
	}
	return nil
}

// GetUI returns the saved state, nil on first run.
func (m *Manager) GetUI() (*UIState, error) {
	return getUI(m.db)
}

// SaveUI stores state after a short quiet period. Bursts of changes, such
// as tabbing through the screens, end in a single write.
func (m *Manager) SaveUI(state UIState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveUI(m.db, *pending)
		}
	})
}
