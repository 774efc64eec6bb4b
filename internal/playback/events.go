package playback

// IndexChange is emitted when the current index moves.
type IndexChange struct {
	Previous int
	Current  int
	Cause    Cause
}

// StateChange is emitted when auto-advance starts or stops.
type StateChange struct {
	Playing bool
	Index   int
	Reason  StopReason // meaningful only when Playing is false
}

// Finished is emitted when auto-advance runs past the last item.
type Finished struct {
	Index int // last valid index, where the session stays
}

// ErrorEvent is emitted for failures the session absorbed.
// None of them are fatal; the display resyncs on the next tick or gesture.
type ErrorEvent struct {
	Operation string // e.g. "seek"
	Index     int
	Err       error
}
