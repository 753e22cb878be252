package asteroids

import (
	"log"
	"math"
	"math/rand"

	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/host"
	"github.com/lixenwraith/retro-handheld/input"
	"github.com/lixenwraith/retro-handheld/store"
	"github.com/lixenwraith/retro-handheld/vmath"
)

// spawnAttempts bounds resampling of a rock position away from the ship
const spawnAttempts = 16

// Game owns a World; one Step equals one frame of the classic 60 Hz loop
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
		Width:  constant.AsteroidsWidth,
		Height: constant.AsteroidsHeight,
		State:  StateMenu,
	}
	g.world.Ship = g.freshShip()
	if scores != nil {
		g.world.High = scores.Get(constant.AsteroidsHighScoreKey)
	}
	return g
}

// World returns the live state for rendering
func (g *Game) World() *World { return &g.world }

// State returns the current phase
func (g *Game) State() State { return g.world.State }

func (g *Game) freshShip() Ship {
	return Ship{
		Pos:   vmath.V2F(g.world.Width/2, g.world.Height/2),
		Angle: -math.Pi / 2,
	}
}

// Start begins a new round with a fresh ship and four rocks
func (g *Game) Start() {
	w := &g.world
	w.Ship = g.freshShip()
	w.Bullets = w.Bullets[:0]
	w.Particles = w.Particles[:0]
	w.Asteroids = w.Asteroids[:0]
	for i := 0; i < constant.AsteroidWaveSize; i++ {
		pos := g.safePoint(func() vmath.Vec2F {
			return vmath.V2F(g.rng.Float64()*w.Width, g.rng.Float64()*w.Height)
		})
		g.spawnRock(pos, constant.AsteroidRadius, constant.AsteroidInitSpeed)
	}
	w.Score = 0
	w.Steps = 0
	w.State = StatePlaying
}

// safePoint samples positions until one is clear of the ship, keeping the last sample otherwise
func (g *Game) safePoint(sample func() vmath.Vec2F) vmath.Vec2F {
	p := sample()
	for i := 1; i < spawnAttempts && vmath.Dist(p, g.world.Ship.Pos) < constant.AsteroidSafeRadius; i++ {
		p = sample()
	}
	return p
}

// spawnRock adds a rock at pos with velocity components uniform in [-speed/2, speed/2)
func (g *Game) spawnRock(pos vmath.Vec2F, radius, speed float64) {
	g.world.Asteroids = append(g.world.Asteroids, Asteroid{
		Pos:    pos,
		Vel:    vmath.V2F((g.rng.Float64()-0.5)*speed, (g.rng.Float64()-0.5)*speed),
		Radius: radius,
		Verts:  g.outline(radius),
	})
}

// outline builds a jagged polygon with vertices at evenly spaced angles
func (g *Game) outline(radius float64) []vmath.Vec2F {
	verts := make([]vmath.Vec2F, constant.AsteroidVertices)
	for i := range verts {
		angle := float64(i) / float64(constant.AsteroidVertices) * 2 * math.Pi
		dist := radius * (constant.AsteroidJagMin + g.rng.Float64()*constant.AsteroidJagRange)
		verts[i] = vmath.FromAngle(angle, dist)
	}
	return verts
}

// spawnWave drops a full wave of rocks on the top or bottom edge
func (g *Game) spawnWave() {
	w := &g.world
	for i := 0; i < constant.AsteroidWaveSize; i++ {
		pos := g.safePoint(func() vmath.Vec2F {
			y := 0.0
			if g.rng.Float64() > 0.5 {
				y = w.Height
			}
			return vmath.V2F(g.rng.Float64()*w.Width, y)
		})
		g.spawnRock(pos, constant.AsteroidRadius, constant.AsteroidWaveSpeed)
	}
}

// HandleAction applies one controller action; returns true when the app should close
// The D-pad steers in every state; outside PLAYING the ship is frozen and Start resets it
func (g *Game) HandleAction(a input.Action) (closeRequested bool) {
	w := &g.world
	s := &w.Ship
	playing := w.State == StatePlaying

	switch a {
	case input.DpadLeft:
		s.Angle -= constant.ShipRotateStep
	case input.DpadRight:
		s.Angle += constant.ShipRotateStep
	case input.DpadUp:
		s.Thrust = true
		g.cues.Emit(audio.CueThrust)
	case input.DpadDown:
		s.Vel = s.Vel.Scale(constant.ShipBrakeFactor)
	case input.BtnA:
		switch w.State {
		case StatePlaying:
			g.fire()
		case StateMenu, StateGameOver:
			g.Start()
		}
	case input.BtnB:
		if !playing {
			return true
		}
		g.hyperspace()
	case input.BtnX:
		if playing && s.Shield <= 0 {
			s.Shield = constant.ShipShieldSteps
			g.cues.Emit(audio.CueNav)
		}
	case input.BtnStart:
		switch w.State {
		case StateMenu, StateGameOver:
			g.Start()
		case StatePlaying:
			w.State = StateMenu
		}
	case input.BtnY, input.ActionNone:
	}
	return false
}

// SetThrust sets the engine flag; the app clears it after the hold time
func (g *Game) SetThrust(on bool) {
	g.world.Ship.Thrust = on
}

func (g *Game) fire() {
	s := &g.world.Ship
	if s.Cooldown > 0 {
		return
	}
	g.world.Bullets = append(g.world.Bullets, Bullet{
		Pos:  s.Pos.Add(vmath.FromAngle(s.Angle, constant.ShipNoseOffset)),
		Vel:  vmath.FromAngle(s.Angle, constant.BulletSpeed),
		Life: constant.BulletLifetime,
	})
	s.Cooldown = constant.WeaponCooldown
	g.cues.Emit(audio.CueLaser)
}

func (g *Game) hyperspace() {
	w := &g.world
	w.Ship.Pos = vmath.V2F(g.rng.Float64()*w.Width, g.rng.Float64()*w.Height)
	w.Ship.Vel = vmath.Vec2F{}
	g.cues.Emit(audio.CueHyperspace)
}

func (g *Game) explode(at vmath.Vec2F, count int) {
	for i := 0; i < count; i++ {
		g.world.Particles = append(g.world.Particles, Particle{
			Pos: at,
			Vel: vmath.V2F(
				(g.rng.Float64()-0.5)*constant.ExplosionSpeed,
				(g.rng.Float64()-0.5)*constant.ExplosionSpeed,
			),
			Life: constant.ExplosionLifeMin + g.rng.Float64()*constant.ExplosionLifeRange,
		})
	}
}

func (g *Game) addScore(n int) {
	w := &g.world
	w.Score += n
	if w.Score > w.High {
		w.High = w.Score
		if g.scores != nil {
			if err := g.scores.Set(constant.AsteroidsHighScoreKey, w.High); err != nil {
				log.Printf("asteroids: save high score: %v", err)
			}
		}
	}
}
