package main

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/calc"
	"github.com/lixenwraith/retro-handheld/config"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/core"
	"github.com/lixenwraith/retro-handheld/device"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/event"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/keychain"
	"github.com/lixenwraith/retro-handheld/render"
	"github.com/lixenwraith/retro-handheld/status"
	"github.com/lixenwraith/retro-handheld/store"
)

// pressFlash is how long a control stays drawn depressed
const pressFlash = 120 * time.Millisecond

// cueHistory bounds the cue tap shown in the debug overlay
const cueHistory = 8

// handheld wires the device to a terminal
// Every field is owned by the main goroutine except the metric cells
type handheld struct {
	cfg    *config.Config
	screen tcell.Screen
	keys   *input.KeyTable
	repeat *input.RepeatFilter

	clock engine.Clock
	sched *engine.Scheduler
	bus   *event.Bus[input.Action]
	audio *audio.Engine
	cues  *host.CueTap

	shell *device.Shell
	charm *keychain.Widget
	view  *render.Renderer

	debug        bool
	pressed      input.Action
	pressedUntil time.Time
	buttons      tcell.ButtonMask
	dragging     bool

	metrics *status.Registry
	frames  int64
	fps     *status.AtomicFloat
	pending *atomic.Int64
	voices  *atomic.Int64
	busPub  *atomic.Int64
	busDel  *atomic.Int64
	busPan  *atomic.Int64
	emitted *atomic.Int64
	dropped *atomic.Int64
	muted   *atomic.Bool
}

// newHandheld assembles the device over an initialised screen; out may be nil for silence
func newHandheld(cfg *config.Config, screen tcell.Screen, keys *input.KeyTable, out audio.Output, scores store.Store, clock engine.Clock, seed int64) *handheld {
	h := &handheld{
		cfg:     cfg,
		screen:  screen,
		keys:    keys,
		repeat:  input.NewRepeatFilter(constant.KeyRepeatWindow),
		clock:   clock,
		sched:   engine.NewScheduler(clock),
		bus:     event.NewBus[input.Action](),
		audio:   audio.NewEngine(cfg.AudioConfig(), out),
		debug:   cfg.Debug,
		metrics: status.NewRegistry(),
	}
	h.cues = host.NewCueTap(h.audio, cueHistory)

	h.fps = h.metrics.Floats.Get("fps")
	h.pending = h.metrics.Ints.Get("sched.pending")
	h.voices = h.metrics.Ints.Get("audio.voices")
	h.busPub = h.metrics.Ints.Get("bus.published")
	h.busDel = h.metrics.Ints.Get("bus.delivered")
	h.busPan = h.metrics.Ints.Get("bus.panics")
	h.emitted = h.metrics.Ints.Get("audio.emitted")
	h.dropped = h.metrics.Ints.Get("audio.suppressed")
	h.muted = h.metrics.Bools.Get("audio.muted")

	apps := device.DefaultApps()
	h.shell = device.NewShell(device.Deps{
		Bus:    h.bus,
		Sched:  h.sched,
		Cues:   h.cues,
		Scores: scores,
		Rand:   rand.New(rand.NewSource(seed)),
		Muter:  h.audio,
	}, apps)
	h.view = render.NewRenderer(screen, len(apps))
	h.charm = keychain.NewWidget(h.view.Layout().Anchor)

	h.shell.Mount()
	h.charm.Mount(h.sched)
	h.sched.Every(time.Second, h.sampleFPS)
	return h
}

// close releases the device; the screen belongs to the caller
func (h *handheld) close() {
	h.charm.Unmount()
	h.shell.Unmount()
	h.sched.CancelAll()
	h.bus.Teardown()
	h.audio.Dispose()
}

// run polls terminal events and drives frames until quit
func (h *handheld) run() {
	ticker := time.NewTicker(h.cfg.FrameInterval())
	defer ticker.Stop()

	events := pollEvents(h.screen)

	h.frame()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.frame()
		}
	}
}

// pollEvents forwards screen events on a buffered channel, closed when the screen finalizes
func pollEvents(screen tcell.Screen) <-chan tcell.Event {
	events := make(chan tcell.Event, constant.InputChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})
	return events
}

// frame advances timers and physics, then draws
func (h *handheld) frame() {
	h.sched.Frame()
	h.frames++
	h.collect()

	v := render.View{Shell: h.shell, Keychain: h.charm.Spring()}
	if h.clock.Now().Before(h.pressedUntil) {
		v.Pressed = h.pressed
	}
	if h.debug {
		v.Debug = h.debugLines()
	}
	h.view.Draw(v)
}

func (h *handheld) sampleFPS() {
	h.fps.Store(float64(h.frames))
	h.frames = 0
}

func (h *handheld) collect() {
	st := h.bus.Stats()
	h.busPub.Store(int64(st.Published))
	h.busDel.Store(int64(st.Delivered))
	h.busPan.Store(int64(st.Panics))
	em, sup := h.audio.Stats()
	h.emitted.Store(em)
	h.dropped.Store(sup)
	h.voices.Store(int64(h.audio.Voices()))
	h.pending.Store(int64(h.sched.Pending()))
	h.muted.Store(h.audio.IsMuted())
}

func (h *handheld) debugLines() []string {
	lines := h.metrics.Lines()
	focus := h.shell.Focus()
	if focus == device.FocusNone {
		focus = "-"
	}
	lines = append(lines, "focus: "+focus)
	if c, ok := h.cues.Last(); ok {
		lines = append(lines, fmt.Sprintf("cue: %s (%d)", c, len(h.cues.History())))
	}
	return lines
}

// handleEvent routes one terminal event; returns false to quit
func (h *handheld) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
		h.view.Resize()
	}
	return true
}

func (h *handheld) handleKey(ev *tcell.EventKey) bool {
	in := h.keys.Resolve(ev)
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		h.shell.ToggleMute()
	case input.IntentToggleDebug:
		h.debug = !h.debug
	case input.IntentAction:
		if h.repeat.Edge(ev, h.clock.Now()) {
			h.press(in.Action)
		}
	case input.IntentKeypad:
		if h.repeat.Edge(ev, h.clock.Now()) {
			h.keypad(in.Rune)
		}
	case input.IntentNone:
	}
	return true
}

// press publishes a controller action; the first input opens the audio device
func (h *handheld) press(a input.Action) {
	h.prime()
	h.pressed = a
	h.pressedUntil = h.clock.Now().Add(pressFlash)
	h.bus.Publish(a)
}

// keypad sends a typed or clicked key to the calculator when it has focus
func (h *handheld) keypad(k rune) {
	app, ok := h.shell.FocusedApp().(*calc.App)
	if !ok {
		return
	}
	h.prime()
	app.Press(k)
}

func (h *handheld) prime() {
	if err := h.audio.Prime(); err != nil {
		log.Printf("audio: %v", err)
	}
}

func (h *handheld) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	held := btn&tcell.Button1 != 0
	wasHeld := h.buttons&tcell.Button1 != 0
	h.buttons = btn

	p := render.PixelAt(x, y)
	spring := h.charm.Spring()
	switch {
	case held && !wasHeld:
		h.click(x, y)
	case held && h.dragging:
		spring.DragTo(p)
	case !held && h.dragging:
		spring.EndDrag()
		h.dragging = false
	}
}

// click resolves a fresh primary press; the charm sits above the device
func (h *handheld) click(x, y int) {
	p := render.PixelAt(x, y)
	if spring := h.charm.Spring(); spring.HitTest(p) {
		spring.BeginDrag(p)
		h.dragging = true
		return
	}

	l := h.view.Layout()
	if a, ok := h.view.Pad().Hit(x, y); ok {
		h.press(a)
		return
	}
	if l.MuteAt(x, y) {
		h.shell.ToggleMute()
		return
	}
	if h.shell.Focus() == device.FocusNone {
		if i, ok := l.TileAt(x, y); ok {
			h.prime()
			h.shell.OpenApp(i)
		}
		return
	}
	if k, ok := l.KeyAt(x, y); ok {
		h.keypad(k)
	}
}
