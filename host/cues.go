package host

import (
	"github.com/lixenwraith/retro-handheld/audio"
)

// CueTap forwards cues to an inner sink and keeps a history of everything requested
// The history records requests even when the inner sink drops them
type CueTap struct {
	inner   Cues
	history []audio.Cue
	limit   int
}

// NewCueTap wraps inner; a nil inner records only, limit 0 keeps everything
func NewCueTap(inner Cues, limit int) *CueTap {
	return &CueTap{inner: inner, limit: limit}
}

func (t *CueTap) Emit(c audio.Cue) bool {
	t.history = append(t.history, c)
	if t.limit > 0 && len(t.history) > t.limit {
		t.history = t.history[len(t.history)-t.limit:]
	}
	if t.inner == nil {
		return false
	}
	return t.inner.Emit(c)
}

// History returns requested cues, oldest first
func (t *CueTap) History() []audio.Cue {
	return t.history
}

// Last returns the most recent cue
func (t *CueTap) Last() (audio.Cue, bool) {
	if len(t.history) == 0 {
		return 0, false
	}
	return t.history[len(t.history)-1], true
}

// Count returns how many times c is in the history
func (t *CueTap) Count(c audio.Cue) int {
	n := 0
	for _, h := range t.history {
		if h == c {
			n++
		}
	}
	return n
}

// Reset clears the history
func (t *CueTap) Reset() {
	t.history = t.history[:0]
}
