// Package asteroids implements the vector asteroids game
package asteroids

import (
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/vmath"
)

// State is the game phase
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// Ship is the player craft; counters are in fixed steps
type Ship struct {
	Pos      vmath.Vec2F
	Vel      vmath.Vec2F
	Angle    float64
	Thrust   bool
	Shield   int
	Cooldown int
}

// shipHull is the outline in ship space, nose along +X
var shipHull = [4]vmath.Vec2F{{X: 8, Y: 0}, {X: -6, Y: 5}, {X: -4, Y: 0}, {X: -6, Y: -5}}

// Hull returns the closed outline in world space
func (s *Ship) Hull() [4]vmath.Vec2F {
	var out [4]vmath.Vec2F
	for i, v := range shipHull {
		out[i] = s.Pos.Add(v.Rotate(s.Angle))
	}
	return out
}

// Asteroid is a rock with a jagged outline; Verts are offsets from Pos
type Asteroid struct {
	Pos    vmath.Vec2F
	Vel    vmath.Vec2F
	Radius float64
	Verts  []vmath.Vec2F
}

// Bullet expires when Life reaches zero
type Bullet struct {
	Pos  vmath.Vec2F
	Vel  vmath.Vec2F
	Life int
}

// Particle is a short-lived debris or exhaust dot
type Particle struct {
	Pos  vmath.Vec2F
	Vel  vmath.Vec2F
	Life float64
}

// Fade is the remaining brightness in [0,1], full until the last ParticleFadeLife steps
func (p *Particle) Fade() float64 {
	return min(1, max(0, p.Life/constant.ParticleFadeLife))
}

// World is the complete mutable game state, updated in place each step
type World struct {
	Width, Height float64

	Ship      Ship
	Asteroids []Asteroid
	Bullets   []Bullet
	Particles []Particle

	Score int
	High  int
	State State

	// Steps counts simulation steps since the last start
	Steps uint64
}
