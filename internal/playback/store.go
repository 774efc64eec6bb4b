package playback

// positionStore is the single source of truth for the current index and the
// playing flag. Writes outside [0, n) are ignored.
type positionStore struct {
	index   int
	playing bool
	n       int
}

func newPositionStore(n, start int) positionStore {
	p := positionStore{n: n}
	p.setIndex(start)
	return p
}

// setIndex moves the index if i is in range and reports whether it did.
// An out-of-range write is not an error: the auto-advance timer reads a
// refused write past the end as "sequence finished".
func (p *positionStore) setIndex(i int) bool {
	if i < 0 || i >= p.n {
		return false
	}
	p.index = i
	return true
}

func (p *positionStore) snapshot() State {
	return State{Index: p.index, Playing: p.playing, Len: p.n}
}
