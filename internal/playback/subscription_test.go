package playback

import (
	"errors"
	"testing"
	"testing/synctest"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendIndex(IndexChange{Previous: 0, Current: 1, Cause: CauseTick})
		sub.sendState(StateChange{Playing: true})
		sub.sendFinished(Finished{Index: 4})
		sub.sendError(ErrorEvent{Operation: "seek", Err: errors.New("boom")})

		if e := <-sub.IndexChanged; e.Current != 1 || e.Cause != CauseTick {
			t.Errorf("IndexChanged = %+v", e)
		}
		if e := <-sub.StateChanged; !e.Playing {
			t.Errorf("StateChanged = %+v", e)
		}
		if e := <-sub.Finished; e.Index != 4 {
			t.Errorf("Finished = %+v", e)
		}
		if e := <-sub.Error; e.Operation != "seek" {
			t.Errorf("Error = %+v", e)
		}
	})
}

func TestSubscription_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for i := range eventBufferSize + 5 {
		sub.sendIndex(IndexChange{Current: i})
	}

	if len(sub.IndexChanged) != eventBufferSize {
		t.Errorf("buffered = %d, want %d", len(sub.IndexChanged), eventBufferSize)
	}
}

func TestSubscription_CloseSignalsDone(t *testing.T) {
	sub := newSubscription()
	sub.close()

	select {
	case <-sub.Done:
	default:
		t.Error("Done not closed")
	}
}

func TestCauseAndReasonStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{CauseTick.String(), "tick"},
		{CauseVisible.String(), "visible"},
		{CauseRestart.String(), "restart"},
		{CauseSeek.String(), "seek"},
		{StopPaused.String(), "paused"},
		{StopFinished.String(), "finished"},
		{StopClosed.String(), "closed"},
		{WriterAuto.String(), "Auto"},
		{WriterManual.String(), "Manual"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
