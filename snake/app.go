package snake

import (
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/event"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
)

const (
	AppID    = "game"
	AppLabel = "Snake+"
)

// App hosts a snake Game; the tick timer exists only while PLAYING
type App struct {
	game *Game
	env  host.Env
	sub  *event.Subscription[input.Action]
	tick engine.Handle
}

func NewApp() *App {
	return &App{}
}

// Factory builds a fresh snake app
func Factory() host.App { return NewApp() }

func (a *App) ID() string    { return AppID }
func (a *App) Label() string { return AppLabel }

// Game exposes state for rendering; nil before Mount
func (a *App) Game() *Game { return a.game }

func (a *App) Mount(env host.Env) {
	a.env = env
	a.game = NewGame(env.Rand, env.Cues, env.Scores)
	a.sub = env.Bus.SubscribeFunc(a.HandleEvent)
}

func (a *App) Unmount() {
	if a.sub != nil {
		a.sub.Unsubscribe()
		a.sub = nil
	}
	a.stopTimer()
}

func (a *App) HandleEvent(act input.Action) {
	if a.game.HandleAction(act) {
		a.env.Close()
		return
	}
	a.syncTimer()
}

func (a *App) onTick() {
	a.game.Tick()
	a.syncTimer()
}

// syncTimer starts or stops the tick interval to match the game phase
func (a *App) syncTimer() {
	playing := a.game.State() == StatePlaying
	switch {
	case playing && a.tick == 0:
		a.tick = a.env.Sched.Every(constant.SnakeTick, a.onTick)
	case !playing && a.tick != 0:
		a.stopTimer()
	}
}

func (a *App) stopTimer() {
	if a.tick != 0 {
		a.env.Sched.Cancel(a.tick)
		a.tick = 0
	}
}
