package playback

// Writer names the single component allowed to move the current index.
type Writer int

const (
	// WriterManual is active while paused: visibility events move the index.
	WriterManual Writer = iota
	// WriterAuto is active while playing: only the auto-advance timer moves
	// the index.
	WriterAuto
)

// String returns the writer name.
func (w Writer) String() string {
	switch w {
	case WriterManual:
		return "Manual"
	case WriterAuto:
		return "Auto"
	default:
		return "Unknown"
	}
}

// State is a snapshot of a session's position and transport state.
type State struct {
	Index   int  // current position; 0 when Len is 0
	Playing bool // auto-advance is running
	Len     int  // number of items in the sequence
}

// Writer returns which writer currently owns the index.
func (s State) Writer() Writer {
	if s.Playing {
		return WriterAuto
	}
	return WriterManual
}

// AtEnd returns true if the index is on the last item.
func (s State) AtEnd() bool {
	return s.Len > 0 && s.Index == s.Len-1
}

// Cause tells why the index moved.
type Cause int

const (
	CauseTick    Cause = iota // auto-advance timer
	CauseVisible              // user scroll settled on a new item
	CauseRestart              // play pressed on the last item
	CauseSeek                 // explicit seek from the transport surface
)

// String returns the cause name.
func (c Cause) String() string {
	switch c {
	case CauseTick:
		return "tick"
	case CauseVisible:
		return "visible"
	case CauseRestart:
		return "restart"
	case CauseSeek:
		return "seek"
	default:
		return "unknown"
	}
}

// StopReason tells why auto-advance stopped.
type StopReason int

const (
	StopPaused   StopReason = iota // user paused
	StopFinished                   // sequence exhausted
	StopClosed                     // session torn down
)

// String returns the reason name.
func (r StopReason) String() string {
	switch r {
	case StopPaused:
		return "paused"
	case StopFinished:
		return "finished"
	case StopClosed:
		return "closed"
	default:
		return "unknown"
	}
}
