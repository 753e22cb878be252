package device

import (
	"io"
	"log"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/event"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/store"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeMuter struct{ muted bool }

func (f *fakeMuter) ToggleMute() bool { f.muted = !f.muted; return f.muted }
func (f *fakeMuter) IsMuted() bool    { return f.muted }

type rig struct {
	bus   *event.Bus[input.Action]
	clock *engine.MockClock
	sched *engine.Scheduler
	cues  *host.CueTap
	shell *Shell
}

func newRig(t *testing.T) *rig {
	t.Helper()
	r := &rig{
		bus:   event.NewBus[input.Action](),
		clock: engine.NewMockClock(time.Date(2024, 5, 1, 9, 41, 30, 0, time.UTC)),
		cues:  host.NewCueTap(nil, 0),
	}
	r.sched = engine.NewScheduler(r.clock)
	r.shell = NewShell(Deps{
		Bus:    r.bus,
		Sched:  r.sched,
		Cues:   r.cues,
		Scores: store.NewMemStore(),
		Rand:   rand.New(rand.NewSource(7)),
		Muter:  &fakeMuter{},
	}, DefaultApps())
	r.shell.Mount()
	t.Cleanup(r.shell.Unmount)
	return r
}

// TestNavigationWraps verifies highlight cycling in both directions with a nav cue each step
func TestNavigationWraps(t *testing.T) {
	r := newRig(t)

	r.bus.Publish(input.DpadLeft)
	if got := r.shell.Highlight(); got != 2 {
		t.Errorf("Expected wrap to last tile, got %d", got)
	}
	r.bus.Publish(input.DpadDown)
	if got := r.shell.Highlight(); got != 0 {
		t.Errorf("Expected wrap to first tile, got %d", got)
	}
	r.bus.Publish(input.DpadRight)
	r.bus.Publish(input.DpadUp)
	r.bus.Publish(input.DpadRight)
	if got := r.shell.Highlight(); got != 1 {
		t.Errorf("Expected highlight 1, got %d", got)
	}
	if got := r.cues.Count(audio.CueNav); got != 5 {
		t.Errorf("Expected 5 nav cues, got %d", got)
	}
	if r.shell.Focus() != FocusNone {
		t.Errorf("Expected no focus, got %q", r.shell.Focus())
	}
}

// TestFocusOnA verifies BTN_A opens the highlighted app with a single confirm cue
func TestFocusOnA(t *testing.T) {
	r := newRig(t)

	r.bus.Publish(input.DpadRight)
	r.cues.Reset()
	r.bus.Publish(input.BtnA)

	if got := r.shell.Focus(); got != "game" {
		t.Fatalf("Expected focus 'game', got %q", got)
	}
	if got := r.cues.Count(audio.CueConfirm); got != 1 {
		t.Errorf("Expected exactly 1 confirm cue, got %d", got)
	}
	if len(r.cues.History()) != 1 {
		t.Errorf("Expected only the confirm cue, got %v", r.cues.History())
	}

	// The opening press must not also reach the app
	if r.sched.Pending() != 1 {
		t.Errorf("Expected only the clock timer, got %d", r.sched.Pending())
	}
}

// TestStartFocuses verifies START behaves like BTN_A on the picker
func TestStartFocuses(t *testing.T) {
	r := newRig(t)
	r.bus.Publish(input.BtnStart)
	if got := r.shell.Focus(); got != "calc" {
		t.Errorf("Expected focus 'calc', got %q", got)
	}
}

// TestFocusedAppOwnsInput verifies the shell ignores navigation while an app is focused
func TestFocusedAppOwnsInput(t *testing.T) {
	r := newRig(t)
	r.bus.Publish(input.BtnA)

	r.bus.Publish(input.DpadRight)
	r.bus.Publish(input.BtnX)
	if r.shell.Highlight() != 0 {
		t.Errorf("Expected highlight unchanged, got %d", r.shell.Highlight())
	}
	if !r.shell.Backlight() {
		t.Error("Expected backlight unchanged while focused")
	}
	if r.cues.Count(audio.CueNav) != 0 {
		t.Error("Expected no shell nav cue while focused")
	}
}

// TestCloseReturnsToPicker verifies close plays cancel and leaves only the clock timer
func TestCloseReturnsToPicker(t *testing.T) {
	r := newRig(t)

	r.bus.Publish(input.DpadRight)
	r.bus.Publish(input.BtnA)
	r.bus.Publish(input.BtnA) // start snake
	if r.sched.Pending() != 2 {
		t.Fatalf("Expected clock plus snake tick, got %d", r.sched.Pending())
	}

	r.bus.Publish(input.BtnB) // pause
	r.bus.Publish(input.BtnB) // close
	if r.shell.Focus() != FocusNone {
		t.Fatalf("Expected picker after close, got %q", r.shell.Focus())
	}
	if last, _ := r.cues.Last(); last != audio.CueCancel {
		t.Errorf("Expected cancel cue last, got %v", last)
	}
	if r.sched.Pending() != 1 {
		t.Errorf("Expected only the clock timer, got %d", r.sched.Pending())
	}
	if r.bus.Len() != 1 {
		t.Errorf("Expected only the shell subscribed, got %d", r.bus.Len())
	}

	// Picker navigation works again
	r.bus.Publish(input.DpadRight)
	if r.shell.Highlight() != 2 {
		t.Errorf("Expected highlight 2, got %d", r.shell.Highlight())
	}
}

// TestUnmountedAppIgnoresEvents verifies a closed app no longer reacts to the bus
func TestUnmountedAppIgnoresEvents(t *testing.T) {
	r := newRig(t)

	r.bus.Publish(input.BtnA)
	first := r.shell.FocusedApp()
	app, ok := first.(interface{ Active() bool })
	if !ok || !app.Active() {
		t.Fatal("Expected mounted calculator")
	}
	r.bus.Publish(input.BtnB)
	if app.Active() {
		t.Error("Expected calculator unmounted after close")
	}

	before := len(r.cues.History())
	r.bus.Publish(input.BtnStart) // focuses calc again, fresh instance
	if r.shell.FocusedApp() == first {
		t.Error("Expected a fresh app instance per focus")
	}
	if got := len(r.cues.History()) - before; got != 1 {
		t.Errorf("Expected only the confirm cue, got %d new cues", got)
	}
}

// TestStaleCloseIgnored verifies a close from an app that lost focus is dropped
func TestStaleCloseIgnored(t *testing.T) {
	r := newRig(t)
	r.shell.OpenApp(0)
	stale := r.shell.FocusedApp()
	r.shell.CloseFocused()
	r.shell.OpenApp(1)

	r.shell.closeApp(stale)
	if r.shell.Focus() != "game" {
		t.Errorf("Expected focus kept on 'game', got %q", r.shell.Focus())
	}
}

// TestRandomLaunch verifies BTN_Y clicks then opens some app and moves the highlight to it
func TestRandomLaunch(t *testing.T) {
	r := newRig(t)
	r.bus.Publish(input.BtnY)

	focus := r.shell.Focus()
	if focus == FocusNone {
		t.Fatal("Expected an app focused")
	}
	if r.shell.Apps()[r.shell.Highlight()].ID != focus {
		t.Errorf("Expected highlight on %q", focus)
	}
	h := r.cues.History()
	if len(h) != 2 || h[0] != audio.CueClick || h[1] != audio.CueConfirm {
		t.Errorf("Expected click then confirm, got %v", h)
	}
}

// TestBacklightAndMute verifies the system toggles
func TestBacklightAndMute(t *testing.T) {
	r := newRig(t)

	r.bus.Publish(input.BtnX)
	if r.shell.Backlight() {
		t.Error("Expected backlight off")
	}
	if r.cues.Count(audio.CueClick) != 1 {
		t.Error("Expected click cue")
	}
	r.bus.Publish(input.BtnX)
	if !r.shell.Backlight() {
		t.Error("Expected backlight on")
	}

	if r.shell.Muted() {
		t.Fatal("Expected unmuted at start")
	}
	if !r.shell.ToggleMute() || !r.shell.Muted() {
		t.Error("Expected muted after toggle")
	}
}

// TestOpenAppBounds verifies invalid indices and double opens are rejected
func TestOpenAppBounds(t *testing.T) {
	r := newRig(t)
	if r.shell.OpenApp(-1) || r.shell.OpenApp(3) {
		t.Error("Expected out-of-range open to fail")
	}
	if !r.shell.OpenApp(2) {
		t.Fatal("Expected open to succeed")
	}
	if r.shell.OpenApp(0) {
		t.Error("Expected open while focused to fail")
	}
	if r.shell.Focus() != "asteroids" {
		t.Errorf("Expected asteroids focus, got %q", r.shell.Focus())
	}
}

// TestStatusClock verifies the status line refreshes from the clock timer
func TestStatusClock(t *testing.T) {
	r := newRig(t)
	if got := r.shell.StatusText(); got != "SIG:OK 09:41" {
		t.Errorf("Expected 'SIG:OK 09:41', got %q", got)
	}

	r.sched.Frame()
	r.clock.Advance(45 * time.Second)
	r.sched.Frame()
	if got := r.shell.StatusText(); got != "SIG:OK 09:42" {
		t.Errorf("Expected 'SIG:OK 09:42', got %q", got)
	}
}

// TestUnmountCleans verifies shell unmount releases the focused app and the clock
func TestUnmountCleans(t *testing.T) {
	r := newRig(t)
	r.shell.OpenApp(1)
	r.bus.Publish(input.BtnA)

	r.shell.Unmount()
	if r.sched.Pending() != 0 {
		t.Errorf("Expected no timers, got %d", r.sched.Pending())
	}
	if r.bus.Len() != 0 {
		t.Errorf("Expected no subscribers, got %d", r.bus.Len())
	}
}
