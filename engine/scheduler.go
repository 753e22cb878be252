package engine

import "time"

// Handle identifies a scheduled callback for cancellation
type Handle uint64

type entryKind uint8

const (
	kindInterval entryKind = iota
	kindOnce
	kindFrame
)

type entry struct {
	id        Handle
	kind      entryKind
	period    time.Duration
	next      time.Time
	fn        func()
	frameFn   func(dt time.Duration)
	cancelled bool
}

// Scheduler is a cooperative timer and frame-callback dispatcher
//
// Nothing runs on its own goroutine: the owner calls Frame once per rendered frame
// and every due callback fires synchronously inside that call.
// This replaces interval timers and animation-frame callbacks with explicit, cancellable handles
type Scheduler struct {
	clock     Clock
	entries   []*entry
	nextID    Handle
	lastFrame time.Time
	frames    uint64
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// Now returns the scheduler clock time
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

func (s *Scheduler) add(e *entry) Handle {
	s.nextID++
	e.id = s.nextID
	s.entries = append(s.entries, e)
	return e.id
}

// Every runs fn each period until cancelled; first run is one period from now
func (s *Scheduler) Every(period time.Duration, fn func()) Handle {
	return s.add(&entry{
		kind:   kindInterval,
		period: period,
		next:   s.clock.Now().Add(period),
		fn:     fn,
	})
}

// After runs fn once, d from now
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.add(&entry{
		kind: kindOnce,
		next: s.clock.Now().Add(d),
		fn:   fn,
	})
}

// OnFrame runs fn on every Frame with the elapsed time since the previous frame
func (s *Scheduler) OnFrame(fn func(dt time.Duration)) Handle {
	return s.add(&entry{
		kind:    kindFrame,
		frameFn: fn,
	})
}

// Cancel stops a scheduled callback; returns false for unknown or already finished handles
// Safe to call from inside a callback, including on the running handle
func (s *Scheduler) Cancel(h Handle) bool {
	if h == 0 {
		return false
	}
	for i, e := range s.entries {
		if e.id == h {
			e.cancelled = true
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Frame fires every due timer and all frame callbacks, in registration order
// An interval fires at most once per frame; a stalled frame does not cause a burst
func (s *Scheduler) Frame() {
	now := s.clock.Now()
	var dt time.Duration
	if s.frames > 0 {
		dt = now.Sub(s.lastFrame)
	}
	s.lastFrame = now
	s.frames++

	if len(s.entries) == 0 {
		return
	}

	snapshot := make([]*entry, len(s.entries))
	copy(snapshot, s.entries)

	for _, e := range snapshot {
		if e.cancelled {
			continue
		}
		switch e.kind {
		case kindInterval:
			if now.Before(e.next) {
				continue
			}
			e.next = e.next.Add(e.period)
			if !e.next.After(now) {
				e.next = now.Add(e.period)
			}
			e.fn()
		case kindOnce:
			if now.Before(e.next) {
				continue
			}
			s.Cancel(e.id)
			e.fn()
		case kindFrame:
			e.frameFn(dt)
		}
	}
}

// Pending returns the number of live registrations
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

// CancelAll drops every registration
func (s *Scheduler) CancelAll() {
	for _, e := range s.entries {
		e.cancelled = true
	}
	s.entries = nil
}
