package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
// Sends never block: when a buffer is full the event is dropped, and
// subscribers are expected to re-read State() after any event.
type Subscription struct {
	IndexChanged <-chan IndexChange
	StateChanged <-chan StateChange
	Finished     <-chan Finished
	Error        <-chan ErrorEvent
	Done         <-chan struct{}

	indexCh    chan IndexChange
	stateCh    chan StateChange
	finishedCh chan Finished
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		indexCh:    make(chan IndexChange, eventBufferSize),
		stateCh:    make(chan StateChange, eventBufferSize),
		finishedCh: make(chan Finished, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.IndexChanged = s.indexCh
	s.StateChanged = s.stateCh
	s.Finished = s.finishedCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) sendIndex(e IndexChange) {
	select {
	case s.indexCh <- e:
	default:
	}
}

func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}

func (s *Subscription) sendFinished(e Finished) {
	select {
	case s.finishedCh <- e:
	default:
	}
}

func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
