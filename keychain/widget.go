package keychain

import (
	"time"

	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/vmath"
)

// Widget runs a Spring from scheduler frames, re-reading the anchor each frame
type Widget struct {
	spring *Spring
	anchor func() vmath.Vec2F
	sched  *engine.Scheduler
	frame  engine.Handle
}

// NewWidget creates a widget whose anchor is supplied by anchorFn
func NewWidget(anchorFn func() vmath.Vec2F) *Widget {
	return &Widget{
		spring: NewSpring(anchorFn()),
		anchor: anchorFn,
	}
}

// Spring exposes state for rendering and pointer input
func (w *Widget) Spring() *Spring { return w.spring }

// Mount starts the frame callback; the spring is recreated at rest
func (w *Widget) Mount(sched *engine.Scheduler) {
	w.Unmount()
	w.sched = sched
	w.spring = NewSpring(w.anchor())
	w.frame = sched.OnFrame(w.onFrame)
}

// Unmount stops the frame callback
func (w *Widget) Unmount() {
	if w.sched != nil && w.frame != 0 {
		w.sched.Cancel(w.frame)
	}
	w.frame = 0
}

func (w *Widget) onFrame(dt time.Duration) {
	w.spring.SetAnchor(w.anchor())
	w.spring.Advance(dt)
}
