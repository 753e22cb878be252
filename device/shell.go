// Package device implements the handheld shell: app picker, focus routing and system toggles
package device

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/event"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/store"
)

// FocusNone is the focus id when the picker is showing
const FocusNone = ""

// Muter is the audio mute control owned by the device
type Muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// Deps are the shared services the shell hands to apps
type Deps struct {
	Bus    *event.Bus[input.Action]
	Sched  *engine.Scheduler
	Cues   host.Cues
	Scores store.Store
	Rand   *rand.Rand
	Muter  Muter
}

// Shell owns focus state and interprets bus actions while no app is focused
//
// The shell subscribes before any app, so on every event it runs first and
// ignores the event when an app holds focus; the app's own subscription handles it.
type Shell struct {
	deps Deps
	apps []Entry

	highlight int
	focused   host.App
	backlight bool
	now       time.Time

	sub   *event.Subscription[input.Action]
	clock engine.Handle
}

// NewShell creates an unmounted shell over apps; apps must be non-empty
func NewShell(deps Deps, apps []Entry) *Shell {
	if len(apps) == 0 {
		panic("device: shell needs at least one app")
	}
	return &Shell{
		deps:      deps,
		apps:      apps,
		backlight: true,
	}
}

// Mount subscribes to the bus and starts the status clock
func (s *Shell) Mount() {
	if s.sub != nil {
		return
	}
	s.sub = s.deps.Bus.SubscribeFunc(s.HandleEvent)
	s.now = s.deps.Sched.Now()
	s.clock = s.deps.Sched.Every(constant.ClockUpdateInterval, func() {
		s.now = s.deps.Sched.Now()
	})
}

// Unmount closes any focused app, stops the clock and unsubscribes
func (s *Shell) Unmount() {
	if s.focused != nil {
		s.focused.Unmount()
		s.focused = nil
	}
	if s.clock != 0 {
		s.deps.Sched.Cancel(s.clock)
		s.clock = 0
	}
	if s.sub != nil {
		s.sub.Unsubscribe()
		s.sub = nil
	}
}

// HandleEvent interprets picker navigation; ignored while an app is focused
func (s *Shell) HandleEvent(a input.Action) {
	if s.focused != nil {
		return
	}

	n := len(s.apps)
	switch a {
	case input.DpadRight, input.DpadDown:
		s.deps.Cues.Emit(audio.CueNav)
		s.highlight = (s.highlight + 1) % n
	case input.DpadLeft, input.DpadUp:
		s.deps.Cues.Emit(audio.CueNav)
		s.highlight = (s.highlight - 1 + n) % n
	case input.BtnA, input.BtnStart:
		s.OpenApp(s.highlight)
	case input.BtnX:
		s.deps.Cues.Emit(audio.CueClick)
		s.backlight = !s.backlight
	case input.BtnY:
		s.deps.Cues.Emit(audio.CueClick)
		s.OpenApp(s.deps.Rand.Intn(n))
	case input.BtnB, input.ActionNone:
	}
}

// OpenApp focuses the app at index with a confirm cue; the highlight follows
// Ignored while another app is focused or for an out-of-range index
func (s *Shell) OpenApp(index int) bool {
	if s.focused != nil || index < 0 || index >= len(s.apps) {
		return false
	}

	s.deps.Cues.Emit(audio.CueConfirm)
	s.highlight = index

	app := s.apps[index].New()
	s.focused = app
	app.Mount(host.Env{
		Bus:    s.deps.Bus,
		Sched:  s.deps.Sched,
		Cues:   s.deps.Cues,
		Scores: s.deps.Scores,
		Rand:   s.deps.Rand,
		Close:  func() { s.closeApp(app) },
	})
	log.Printf("device: focus %s", app.ID())
	return true
}

// closeApp returns to the picker; calls from an app that no longer holds focus are ignored
func (s *Shell) closeApp(app host.App) {
	if s.focused != app {
		return
	}
	s.deps.Cues.Emit(audio.CueCancel)
	app.Unmount()
	s.focused = nil
	log.Printf("device: close %s", app.ID())
}

// CloseFocused closes the focused app as if it had asked to close
func (s *Shell) CloseFocused() {
	if s.focused != nil {
		s.closeApp(s.focused)
	}
}

// Focus returns the focused app id or FocusNone
func (s *Shell) Focus() string {
	if s.focused == nil {
		return FocusNone
	}
	return s.focused.ID()
}

// FocusedApp returns the focused app, nil on the picker
func (s *Shell) FocusedApp() host.App { return s.focused }

// Highlight returns the picker index
func (s *Shell) Highlight() int { return s.highlight }

// Apps returns picker entries
func (s *Shell) Apps() []Entry { return s.apps }

// Backlight reports whether the screen backlight is on
func (s *Shell) Backlight() bool { return s.backlight }

// ToggleMute flips the audio mute; returns the new state
func (s *Shell) ToggleMute() bool {
	if s.deps.Muter == nil {
		return false
	}
	return s.deps.Muter.ToggleMute()
}

// Muted reports the audio mute state
func (s *Shell) Muted() bool {
	if s.deps.Muter == nil {
		return true
	}
	return s.deps.Muter.IsMuted()
}

// StatusText is the status bar line, refreshed by the clock timer
func (s *Shell) StatusText() string {
	return fmt.Sprintf("SIG:OK %02d:%02d", s.now.Hour(), s.now.Minute())
}
