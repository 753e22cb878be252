package main

import (
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-handheld/calc"
	"github.com/lixenwraith/retro-handheld/config"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/render"
	"github.com/lixenwraith/retro-handheld/store"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type testRig struct {
	screen tcell.SimulationScreen
	clock  *engine.MockClock
	h      *handheld
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(110, 44)

	clock := engine.NewMockClock(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	h := newHandheld(config.Default(), scr, input.DefaultKeyTable(), nil, store.NewMemStore(), clock, 1)
	t.Cleanup(h.close)
	return &testRig{screen: scr, clock: clock, h: h}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// tap sends a key then moves past the repeat window
func (r *testRig) tap(ev *tcell.EventKey) bool {
	ok := r.h.handleEvent(ev)
	r.clock.Advance(100 * time.Millisecond)
	return ok
}

func (r *testRig) click(x, y int) {
	r.h.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	r.h.handleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

// TestKeyFocusesApp verifies the A key opens the highlighted app
func TestKeyFocusesApp(t *testing.T) {
	r := newTestRig(t)
	r.tap(special(tcell.KeyRight))
	r.tap(key('z'))
	if got := r.h.shell.Focus(); got != "game" {
		t.Errorf("Expected focus 'game', got %q", got)
	}
}

// TestAutoRepeatSuppressed verifies a held key produces one action
func TestAutoRepeatSuppressed(t *testing.T) {
	r := newTestRig(t)
	for i := 0; i < 5; i++ {
		r.h.handleEvent(special(tcell.KeyRight))
		r.clock.Advance(20 * time.Millisecond)
	}
	if got := r.h.shell.Highlight(); got != 1 {
		t.Errorf("Expected a single step for held key, got highlight %d", got)
	}

	r.clock.Advance(100 * time.Millisecond)
	r.h.handleEvent(special(tcell.KeyRight))
	if got := r.h.shell.Highlight(); got != 2 {
		t.Errorf("Expected second press after release, got highlight %d", got)
	}
}

// TestTypedCalculator verifies typed digits and operators reach the focused calculator
func TestTypedCalculator(t *testing.T) {
	r := newTestRig(t)

	// Keypad runes are ignored on the picker
	r.tap(key('7'))
	r.tap(special(tcell.KeyEnter))
	app, ok := r.h.shell.FocusedApp().(*calc.App)
	if !ok {
		t.Fatalf("Expected calculator focus, got %q", r.h.shell.Focus())
	}

	for _, k := range "12*3=" {
		r.tap(key(k))
	}
	if got := app.Calculator().Display(); got != "36" {
		t.Errorf("Expected 36, got %q", got)
	}

	r.tap(special(tcell.KeyEscape))
	if r.h.shell.FocusedApp() != nil {
		t.Error("Expected Escape to close the calculator")
	}
}

// TestSystemKeys verifies quit, mute and debug toggles
func TestSystemKeys(t *testing.T) {
	r := newTestRig(t)

	r.tap(special(tcell.KeyCtrlS))
	if !r.h.shell.Muted() {
		t.Error("Expected muted after Ctrl+S")
	}

	r.tap(special(tcell.KeyF12))
	r.h.frame()
	found := false
	for y := 0; y < 10; y++ {
		var sb strings.Builder
		for x := 0; x < 110; x++ {
			c, _, _, _ := r.screen.GetContent(x, y)
			sb.WriteRune(c)
		}
		if strings.Contains(sb.String(), "sched.pending") {
			found = true
		}
	}
	if !found {
		t.Error("Expected debug overlay with scheduler metric")
	}

	if r.tap(special(tcell.KeyCtrlC)) {
		t.Error("Expected Ctrl+C to quit")
	}
}

// TestBusMetrics verifies published and delivered counts reach the overlay lines
func TestBusMetrics(t *testing.T) {
	r := newTestRig(t)
	r.tap(special(tcell.KeyRight)) // shell only
	r.tap(key('z'))                // shell opens snake; the app subscribes after this dispatch
	r.tap(key('z'))                // shell (ignores it while focused) and snake
	r.h.frame()

	want := map[string]bool{"bus.published: 3": false, "bus.delivered: 4": false, "bus.panics: 0": false}
	for _, ln := range r.h.debugLines() {
		if _, ok := want[ln]; ok {
			want[ln] = true
		}
	}
	for ln, seen := range want {
		if !seen {
			t.Errorf("Expected overlay line %q", ln)
		}
	}
}

// TestMouseControls verifies clicks on drawn controls, tiles and keypad
func TestMouseControls(t *testing.T) {
	r := newTestRig(t)
	l := r.h.view.Layout()

	for _, rg := range l.Controls {
		if rg.Action == input.DpadRight {
			r.click(rg.X+1, rg.Y+1)
		}
	}
	if r.h.shell.Highlight() != 1 {
		t.Errorf("Expected D-pad click to move highlight, got %d", r.h.shell.Highlight())
	}

	tile := l.Tiles[0]
	r.click(tile.X+2, tile.Y+2)
	app, ok := r.h.shell.FocusedApp().(*calc.App)
	if !ok {
		t.Fatalf("Expected tile click to open calc, got %q", r.h.shell.Focus())
	}
	if r.h.shell.Highlight() != 0 {
		t.Errorf("Expected highlight to follow the opened tile, got %d", r.h.shell.Highlight())
	}

	for _, want := range "9-4=" {
		for _, k := range l.Keys {
			if k.Key == want {
				r.click(k.X+1, k.Y+1)
			}
		}
	}
	if got := app.Calculator().Display(); got != "5" {
		t.Errorf("Expected 5, got %q", got)
	}

	muted := r.h.shell.Muted()
	r.click(l.Mute.X, l.Mute.Y)
	if r.h.shell.Muted() == muted {
		t.Error("Expected mute toggle click")
	}
}

// TestKeychainDrag verifies press, drag and release on the charm
func TestKeychainDrag(t *testing.T) {
	r := newTestRig(t)
	sp := r.h.charm.Spring()
	x, y := render.CellAt(sp.Pos)

	r.h.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	if !sp.Dragging {
		t.Fatal("Expected drag to start on the charm")
	}
	r.h.handleEvent(tcell.NewEventMouse(x+6, y+2, tcell.Button1, tcell.ModNone))
	if cx, cy := render.CellAt(sp.Pos); cx != x+6 || cy != y+2 {
		t.Errorf("Expected charm under pointer, got (%d,%d)", cx, cy)
	}
	r.h.handleEvent(tcell.NewEventMouse(x+6, y+2, tcell.ButtonNone, tcell.ModNone))
	if sp.Dragging {
		t.Error("Expected drag to end on release")
	}

	// Released charm swings back toward rest under the frame loop
	before := sp.Pos
	r.clock.Advance(time.Second / 60)
	r.h.frame()
	r.clock.Advance(time.Second / 60)
	r.h.frame()
	if sp.Pos == before {
		t.Error("Expected charm to move after release")
	}
}

// TestCloseReleases verifies shutdown cancels every timer
func TestCloseReleases(t *testing.T) {
	r := newTestRig(t)
	r.tap(special(tcell.KeyRight))
	r.tap(key('z'))
	r.tap(key('z')) // start snake

	r.h.close()
	if got := r.h.sched.Pending(); got != 0 {
		t.Errorf("Expected no pending timers, got %d", got)
	}
	if r.h.bus.Len() != 0 {
		t.Errorf("Expected bus torn down, got %d subscribers", r.h.bus.Len())
	}
}

// TestPollEvents verifies events are forwarded on the sized buffer and the channel closes with the screen
func TestPollEvents(t *testing.T) {
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}

	events := pollEvents(scr)
	if cap(events) != constant.InputChannelSize {
		t.Errorf("Expected buffer %d, got %d", constant.InputChannelSize, cap(events))
	}

	scr.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	select {
	case ev := <-events:
		k, ok := ev.(*tcell.EventKey)
		if !ok || k.Rune() != 'z' {
			t.Errorf("Expected key 'z', got %#v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected injected key to be forwarded")
	}

	scr.Fini()
	select {
	case _, ok := <-events:
		if ok {
			t.Error("Expected channel closed after Fini")
		}
	case <-time.After(time.Second):
		t.Fatal("Expected channel to close after Fini")
	}
}
