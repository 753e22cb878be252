package asteroids

import (
	"time"

	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/event"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
)

const (
	AppID    = "asteroids"
	AppLabel = "Astro"
)

// App hosts an asteroids Game driven by frame callbacks at a fixed step
type App struct {
	game    *Game
	env     host.Env
	sub     *event.Subscription[input.Action]
	frame   engine.Handle
	thrust  engine.Handle
	stepper *engine.FixedStepper
}

func NewApp() *App {
	return &App{}
}

// Factory builds a fresh asteroids app
func Factory() host.App { return NewApp() }

func (a *App) ID() string    { return AppID }
func (a *App) Label() string { return AppLabel }

// Game exposes state for rendering; nil before Mount
func (a *App) Game() *Game { return a.game }

func (a *App) Mount(env host.Env) {
	a.env = env
	a.game = NewGame(env.Rand, env.Cues, env.Scores)
	a.stepper = engine.NewFixedStepper(constant.FixedStep, constant.MaxStepsPerFrame)
	a.sub = env.Bus.SubscribeFunc(a.HandleEvent)
	a.frame = env.Sched.OnFrame(a.onFrame)
}

func (a *App) Unmount() {
	if a.sub != nil {
		a.sub.Unsubscribe()
		a.sub = nil
	}
	a.cancel(&a.frame)
	a.cancel(&a.thrust)
}

func (a *App) cancel(h *engine.Handle) {
	if *h != 0 {
		a.env.Sched.Cancel(*h)
		*h = 0
	}
}

func (a *App) onFrame(dt time.Duration) {
	for n := a.stepper.Advance(dt); n > 0; n-- {
		a.game.Step()
	}
}

func (a *App) HandleEvent(act input.Action) {
	if a.game.HandleAction(act) {
		a.env.Close()
		return
	}
	if act == input.DpadUp && a.game.World().Ship.Thrust {
		// Each press extends the burn from now
		a.cancel(&a.thrust)
		a.thrust = a.env.Sched.After(constant.ThrustHold, func() {
			a.thrust = 0
			a.game.SetThrust(false)
		})
	}
}
