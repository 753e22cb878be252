package snake

import (
	"log"
	"math/rand"

	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/store"
)

// Game owns a World and applies controller actions and ticks to it
type Game struct {
	world  World
	rng    *rand.Rand
	cues   host.Cues
	scores store.Store
}

// NewGame creates a game in MENU with the persisted high score loaded
func NewGame(rng *rand.Rand, cues host.Cues, scores store.Store) *Game {
	g := &Game{
		rng:    rng,
		cues:   cues,
		scores: scores,
	}
	g.world = World{
		Width:   constant.SnakeGridWidth,
		Height:  constant.SnakeGridHeight,
		Body:    []Point{{constant.SnakeStartX, constant.SnakeStartY}},
		Food:    Point{5, 5},
		HasFood: true,
		State:   StateMenu,
	}
	if scores != nil {
		g.world.High = scores.Get(constant.SnakeHighScoreKey)
	}
	return g
}

// World returns the live state for rendering
func (g *Game) World() *World { return &g.world }

// State returns the current phase
func (g *Game) State() State { return g.world.State }

// Reset starts a new round
func (g *Game) Reset() {
	w := &g.world
	w.Body = w.Body[:0]
	w.Body = append(w.Body, Point{constant.SnakeStartX, constant.SnakeStartY})
	w.Score = 0
	w.Dir = dirRight
	w.NextDir = dirRight
	w.State = StatePlaying
	g.placeFood()
	g.cues.Emit(audio.CueConfirm)
}

// HandleAction applies one controller action; returns true when the app should close
func (g *Game) HandleAction(a input.Action) (closeRequested bool) {
	w := &g.world
	switch a {
	case input.DpadUp:
		if w.Dir.Y == 0 {
			w.NextDir = dirUp
		}
	case input.DpadDown:
		if w.Dir.Y == 0 {
			w.NextDir = dirDown
		}
	case input.DpadLeft:
		if w.Dir.X == 0 {
			w.NextDir = dirLeft
		}
	case input.DpadRight:
		if w.Dir.X == 0 {
			w.NextDir = dirRight
		}
	case input.BtnA:
		switch w.State {
		case StateMenu, StateGameOver:
			g.Reset()
		case StatePaused:
			w.State = StatePlaying
		case StatePlaying:
		}
	case input.BtnB:
		switch w.State {
		case StatePlaying:
			w.State = StatePaused
		case StatePaused, StateGameOver, StateMenu:
			return true
		}
	case input.BtnY:
		w.Wrap = !w.Wrap
		g.cues.Emit(audio.CueClick)
	case input.BtnStart:
		switch w.State {
		case StatePlaying, StatePaused:
			g.Reset()
		case StateMenu, StateGameOver:
		}
	case input.BtnX, input.ActionNone:
	}
	return false
}

// Tick advances the snake one cell; does nothing outside PLAYING
func (g *Game) Tick() {
	w := &g.world
	if w.State != StatePlaying {
		return
	}

	w.Dir = w.NextDir
	head := w.Head().Add(w.Dir)

	if w.Wrap {
		head = wrapPoint(head, w.Width, w.Height)
	} else if head.X < 0 || head.X >= w.Width || head.Y < 0 || head.Y >= w.Height {
		g.gameOver()
		return
	}

	if w.Occupied(head) {
		g.gameOver()
		return
	}

	ate := w.HasFood && head == w.Food

	if ate {
		w.Body = append(w.Body, Point{})
	}
	copy(w.Body[1:], w.Body[:len(w.Body)-1])
	w.Body[0] = head

	if ate {
		g.cues.Emit(audio.CueEat)
		g.addScore(constant.SnakeFoodScore)
		g.placeFood()
	}
}

func (g *Game) gameOver() {
	g.cues.Emit(audio.CueCrash)
	g.world.State = StateGameOver
}

func (g *Game) addScore(n int) {
	w := &g.world
	w.Score += n
	if w.Score > w.High {
		w.High = w.Score
		if g.scores != nil {
			if err := g.scores.Set(constant.SnakeHighScoreKey, w.High); err != nil {
				log.Printf("snake: save high score: %v", err)
			}
		}
	}
}

// placeFood picks a free cell outside the reserved rows
// Random sampling first, then a scan of the remaining free cells; no free cell means no food
func (g *Game) placeFood() {
	w := &g.world
	rows := w.Height - 2

	for i := 0; i < constant.SnakeFoodAttempts; i++ {
		p := Point{g.rng.Intn(w.Width), g.rng.Intn(rows) + 1}
		if !w.Occupied(p) {
			w.Food = p
			w.HasFood = true
			return
		}
	}

	free := make([]Point, 0, w.Width*rows)
	for y := 1; y <= rows; y++ {
		for x := 0; x < w.Width; x++ {
			p := Point{x, y}
			if !w.Occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		w.HasFood = false
		return
	}
	w.Food = free[g.rng.Intn(len(free))]
	w.HasFood = true
}

func wrapPoint(p Point, width, height int) Point {
	if p.X < 0 {
		p.X = width - 1
	}
	if p.X >= width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = height - 1
	}
	if p.Y >= height {
		p.Y = 0
	}
	return p
}
