package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// keyID identifies a physical key across events
type keyID struct {
	key  tcell.Key
	r    rune
	mods tcell.ModMask
}

// RepeatFilter suppresses terminal auto-repeat
// Terminals report no key-up, so an identical key arriving within the window is treated as held
type RepeatFilter struct {
	window time.Duration
	last   map[keyID]time.Time
}

// NewRepeatFilter creates a filter with the given repeat window
func NewRepeatFilter(window time.Duration) *RepeatFilter {
	return &RepeatFilter{
		window: window,
		last:   make(map[keyID]time.Time),
	}
}

// Edge reports whether the event at now is a fresh press
// Every event refreshes the key's timestamp, so a held key stays suppressed
func (f *RepeatFilter) Edge(ev *tcell.EventKey, now time.Time) bool {
	id := keyID{key: ev.Key(), mods: ev.Modifiers()}
	if ev.Key() == tcell.KeyRune {
		id.r = ev.Rune()
	}

	prev, seen := f.last[id]
	f.last[id] = now
	return !seen || now.Sub(prev) >= f.window
}
