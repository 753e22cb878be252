package calc

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/event"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/store"
)

type testRig struct {
	bus    *event.Bus[input.Action]
	cues   *host.CueTap
	closes int
	env    host.Env
}

func newRig() *testRig {
	r := &testRig{
		bus:  event.NewBus[input.Action](),
		cues: host.NewCueTap(nil, 0),
	}
	r.env = host.Env{
		Bus:    r.bus,
		Sched:  engine.NewScheduler(engine.NewMockClock(time.Unix(0, 0))),
		Cues:   r.cues,
		Scores: store.NewMemStore(),
		Rand:   rand.New(rand.NewSource(1)),
		Close:  func() { r.closes++ },
	}
	return r
}

// TestAppButtons verifies bus mapping for the calculator
func TestAppButtons(t *testing.T) {
	r := newRig()
	app := NewApp()
	app.Mount(r.env)

	for _, k := range "2+3" {
		app.Press(k)
	}
	r.bus.Publish(input.BtnA)
	if app.Calculator().Display() != "5" {
		t.Errorf("Expected BTN_A to evaluate to '5', got %q", app.Calculator().Display())
	}

	r.bus.Publish(input.BtnStart)
	if app.Calculator().Display() != "0" || app.Calculator().Echo() != "" {
		t.Error("Expected BTN_START to clear")
	}

	r.bus.Publish(input.BtnB)
	if r.closes != 1 {
		t.Errorf("Expected close requested once, got %d", r.closes)
	}
}

// TestAppCues verifies nav per digit, confirm per operation, click on clear
func TestAppCues(t *testing.T) {
	r := newRig()
	app := NewApp()
	app.Mount(r.env)

	app.Press('1')
	app.Press('2')
	app.Press('+')
	app.Press(ResetKey)

	want := []audio.Cue{audio.CueNav, audio.CueNav, audio.CueConfirm, audio.CueClick}
	got := r.cues.History()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cue %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

// TestAppUnmountedIgnoresInput verifies no state change after unsubscribe
func TestAppUnmountedIgnoresInput(t *testing.T) {
	r := newRig()
	app := NewApp()
	app.Mount(r.env)
	app.Press('7')
	app.Unmount()

	before := app.Calculator().Snapshot()
	for _, a := range input.Actions {
		r.bus.Publish(a)
	}
	if app.Press('9') {
		t.Error("Expected keypad to be inactive")
	}
	if got := app.Calculator().Snapshot(); got != before {
		t.Errorf("Expected state unchanged, got %+v", got)
	}
	if r.closes != 0 {
		t.Errorf("Expected no close request, got %d", r.closes)
	}
	if r.bus.Len() != 0 {
		t.Errorf("Expected no subscribers, got %d", r.bus.Len())
	}
}

// TestKeypadLayout verifies every layout key is accepted
func TestKeypadLayout(t *testing.T) {
	r := newRig()
	app := NewApp()
	app.Mount(r.env)
	for _, k := range KeypadLayout {
		if !app.Press(k) {
			t.Errorf("Expected key %q accepted", k)
		}
	}
	if app.Press('x') {
		t.Error("Expected unknown key rejected")
	}
}
