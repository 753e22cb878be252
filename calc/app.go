package calc

import (
	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/event"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
)

const (
	AppID    = "calc"
	AppLabel = "Calc"
)

// KeypadLayout is the 4x4 on-screen keypad, row-major
const KeypadLayout = "789/456*123-0.=+"

// ResetKey is the keypad rune for the full-width reset key under the grid
const ResetKey = 'c'

// App hosts a Calculator on the device
type App struct {
	calc *Calculator
	env  host.Env
	sub  *event.Subscription[input.Action]
}

func NewApp() *App {
	return &App{calc: New()}
}

// Factory builds a fresh calculator app
func Factory() host.App { return NewApp() }

func (a *App) ID() string    { return AppID }
func (a *App) Label() string { return AppLabel }

// Calculator exposes state for rendering
func (a *App) Calculator() *Calculator { return a.calc }

func (a *App) Mount(env host.Env) {
	a.env = env
	a.sub = env.Bus.SubscribeFunc(a.HandleEvent)
}

func (a *App) Unmount() {
	if a.sub != nil {
		a.sub.Unsubscribe()
		a.sub = nil
	}
}

// Active reports whether the app is mounted
func (a *App) Active() bool { return a.sub != nil }

// HandleEvent maps controller actions; digits come from the keypad, not the bus
func (a *App) HandleEvent(act input.Action) {
	switch act {
	case input.BtnStart:
		a.clear()
	case input.BtnB:
		a.env.Close()
	case input.BtnA:
		a.operate(OpEquals)
	case input.DpadUp, input.DpadDown, input.DpadLeft, input.DpadRight, input.BtnX, input.BtnY, input.ActionNone:
	}
}

// Press handles a keypad key: digits, '.', operators or ResetKey
// Returns false for unknown keys or when the app is not mounted
func (a *App) Press(key rune) bool {
	if !a.Active() {
		return false
	}
	if key == ResetKey || key == 'C' {
		a.clear()
		return true
	}
	if op, ok := ParseOp(key); ok {
		a.operate(op)
		return true
	}
	if a.calc.InputDigit(key) {
		a.env.Cues.Emit(audio.CueNav)
		return true
	}
	return false
}

func (a *App) operate(op Op) {
	a.env.Cues.Emit(audio.CueConfirm)
	a.calc.PerformOperation(op)
}

func (a *App) clear() {
	a.env.Cues.Emit(audio.CueClick)
	a.calc.Clear()
}
