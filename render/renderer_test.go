package render

import (
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-handheld/asteroids"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/device"
	"github.com/lixenwraith/retro-handheld/vmath"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/event"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/keychain"
	"github.com/lixenwraith/retro-handheld/store"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type renderRig struct {
	screen tcell.SimulationScreen
	bus    *event.Bus[input.Action]
	sched  *engine.Scheduler
	shell  *device.Shell
	r      *Renderer
}

func newRenderRig(t *testing.T, w, h int) *renderRig {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)

	rig := &renderRig{
		screen: scr,
		bus:    event.NewBus[input.Action](),
		sched:  engine.NewScheduler(engine.NewMockClock(time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC))),
	}
	apps := device.DefaultApps()
	rig.shell = device.NewShell(device.Deps{
		Bus:    rig.bus,
		Sched:  rig.sched,
		Cues:   host.NewCueTap(nil, 0),
		Scores: store.NewMemStore(),
		Rand:   rand.New(rand.NewSource(1)),
	}, apps)
	rig.shell.Mount()
	t.Cleanup(rig.shell.Unmount)
	rig.r = NewRenderer(scr, len(apps))
	return rig
}

// row returns the runes on screen row y
func (rig *renderRig) row(y int) string {
	w, _ := rig.screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := rig.screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func (rig *renderRig) contains(s string) bool {
	_, h := rig.screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rig.row(y), s) {
			return true
		}
	}
	return false
}

// TestDrawPicker verifies the status bar and tiles render on the picker
func TestDrawPicker(t *testing.T) {
	rig := newRenderRig(t, 100, 40)
	rig.r.Draw(View{Shell: rig.shell})

	l := rig.r.Layout()
	if got := rig.row(l.LCD.Y); !strings.Contains(got, "SIG:OK 12:05") {
		t.Errorf("Expected status bar, got %q", got)
	}
	for _, label := range []string{"CALC", "SNAKE+", "ASTRO"} {
		if !rig.contains(label) {
			t.Errorf("Expected tile label %q", label)
		}
	}
	if !rig.contains("START") {
		t.Error("Expected START label on controls")
	}
}

// TestDrawApps verifies each focused app draws its own screen
func TestDrawApps(t *testing.T) {
	rig := newRenderRig(t, 100, 40)

	cases := []struct {
		index int
		want  string
	}{
		{0, "CALC-86"},
		{1, "PRESS A TO START"},
		{2, "ASTRO-VECTOR"},
	}
	for _, tc := range cases {
		if !rig.shell.OpenApp(tc.index) {
			t.Fatalf("Open %d failed", tc.index)
		}
		rig.r.Draw(View{Shell: rig.shell})
		if !rig.contains(tc.want) {
			t.Errorf("App %d: expected %q on screen", tc.index, tc.want)
		}
		rig.shell.CloseFocused()
	}
}

// TestDrawAsteroidsPlaying verifies the braille raster appears once the game runs
func TestDrawAsteroidsPlaying(t *testing.T) {
	rig := newRenderRig(t, 100, 40)
	rig.shell.OpenApp(2)
	rig.bus.Publish(input.BtnA)
	rig.r.Draw(View{Shell: rig.shell})

	l := rig.r.Layout()
	braille := 0
	for y := l.LCD.Y; y < l.LCD.Y+l.LCD.H; y++ {
		for _, r := range rig.row(y) {
			if r > brailleBase && r <= brailleBase+0xFF {
				braille++
			}
		}
	}
	if braille == 0 {
		t.Error("Expected braille cells for ship and rocks")
	}
}

// TestDrawParticleFade verifies a dying particle is drawn in faint ink and a fresh one in full ink
func TestDrawParticleFade(t *testing.T) {
	rig := newRenderRig(t, 100, 40)
	rig.shell.OpenApp(2)
	app, ok := rig.shell.FocusedApp().(*asteroids.App)
	if !ok {
		t.Fatal("Expected asteroids focused")
	}
	w := app.Game().World()
	w.Particles = []asteroids.Particle{
		{Pos: vmath.V2F(10, 10), Life: constant.ParticleFadeLife},
		{Pos: vmath.V2F(310, 10), Life: 3},
	}
	rig.r.Draw(View{Shell: rig.shell})

	l := rig.r.Layout()
	viewX, viewY := l.LCD.X+(l.LCD.W-constant.AsteroidsCanvasCols)/2, l.LCD.Y+2
	lcd := newLcdStyles(true)
	inkFg, _, _ := lcd.ink.Decompose()
	faintFg, _, _ := lcd.faint.Decompose()

	// 0.3 dots per world unit: x=10 lands in cell 1, x=310 in cell 46
	fresh, _, freshStyle, _ := rig.screen.GetContent(viewX+1, viewY)
	dying, _, dyingStyle, _ := rig.screen.GetContent(viewX+46, viewY)
	if fresh < brailleBase || dying < brailleBase {
		t.Fatalf("Expected braille dots for both particles, got %q and %q", fresh, dying)
	}
	if fg, _, _ := freshStyle.Decompose(); fg != inkFg {
		t.Errorf("Expected fresh particle in ink %v, got %v", inkFg, fg)
	}
	if fg, _, _ := dyingStyle.Decompose(); fg != faintFg {
		t.Errorf("Expected dying particle in faint ink %v, got %v", faintFg, fg)
	}
}

// TestDrawTooSmall verifies the fallback message and disabled hit regions
func TestDrawTooSmall(t *testing.T) {
	rig := newRenderRig(t, 40, 12)
	rig.r.Draw(View{Shell: rig.shell})

	if !rig.contains("too small") {
		t.Error("Expected too-small message")
	}
	if len(rig.r.Pad().Regions()) != 0 {
		t.Error("Expected no pointer regions")
	}

	rig.screen.SetSize(100, 40)
	rig.r.Resize()
	if len(rig.r.Pad().Regions()) != len(input.Actions) {
		t.Errorf("Expected %d regions after resize, got %d", len(input.Actions), len(rig.r.Pad().Regions()))
	}
}

// TestDrawKeychainAndOverlay verifies the charm and debug lines are drawn on top
func TestDrawKeychainAndOverlay(t *testing.T) {
	rig := newRenderRig(t, 100, 40)
	l := rig.r.Layout()
	w := keychain.NewWidget(l.Anchor)
	w.Mount(rig.sched)
	defer w.Unmount()

	rig.r.Draw(View{Shell: rig.shell, Keychain: w.Spring(), Debug: []string{"fps: 60"}})

	cx, cy := CellAt(w.Spring().Pos)
	if r, _, _, _ := rig.screen.GetContent(cx, cy); r != 'O' {
		t.Errorf("Expected ring at (%d,%d), got %q", cx, cy, r)
	}
	if !rig.contains("fps: 60") {
		t.Error("Expected debug overlay line")
	}
}
