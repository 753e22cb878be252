package host

import (
	"testing"

	"github.com/lixenwraith/retro-handheld/audio"
)

type countingSink struct{ n int }

func (s *countingSink) Emit(audio.Cue) bool { s.n++; return true }

// TestCueTapForwards verifies cues reach the inner sink and are recorded
func TestCueTapForwards(t *testing.T) {
	sink := &countingSink{}
	tap := NewCueTap(sink, 0)

	if !tap.Emit(audio.CueEat) {
		t.Error("Expected inner result forwarded")
	}
	tap.Emit(audio.CueEat)
	tap.Emit(audio.CueCrash)

	if sink.n != 3 {
		t.Errorf("Expected 3 forwarded, got %d", sink.n)
	}
	if tap.Count(audio.CueEat) != 2 {
		t.Errorf("Expected 2 eat cues, got %d", tap.Count(audio.CueEat))
	}
	if last, ok := tap.Last(); !ok || last != audio.CueCrash {
		t.Errorf("Expected last crash, got %v", last)
	}
}

// TestCueTapLimit verifies the history window
func TestCueTapLimit(t *testing.T) {
	tap := NewCueTap(nil, 2)
	tap.Emit(audio.CueClick)
	tap.Emit(audio.CueNav)
	tap.Emit(audio.CueConfirm)

	h := tap.History()
	if len(h) != 2 || h[0] != audio.CueNav || h[1] != audio.CueConfirm {
		t.Errorf("Expected [nav confirm], got %v", h)
	}

	tap.Reset()
	if _, ok := tap.Last(); ok {
		t.Error("Expected empty history after reset")
	}
}
