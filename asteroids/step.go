package asteroids

import (
	"math"

	"github.com/lixenwraith/retro-handheld/audio"
	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/vmath"
)

// Step advances the simulation by one fixed step
// Rocks, bullets and particles keep drifting in every phase; the ship and collisions only run while PLAYING
func (g *Game) Step() {
	w := &g.world
	w.Steps++

	if w.State == StatePlaying {
		g.stepShip()
	}
	g.stepBullets()
	g.stepAsteroids()
	g.stepParticles()

	if len(w.Asteroids) == 0 && w.State == StatePlaying {
		g.spawnWave()
	}
}

func (g *Game) stepShip() {
	w := &g.world
	s := &w.Ship

	if s.Thrust {
		s.Vel = s.Vel.Add(vmath.FromAngle(s.Angle, constant.ShipThrust))
		nozzle := s.Pos.Sub(vmath.FromAngle(s.Angle, constant.ShipNozzleOffset))
		jitter := vmath.V2F(g.rng.Float64()-0.5, g.rng.Float64()-0.5).Scale(constant.ThrustParticleJitter)
		w.Particles = append(w.Particles, Particle{
			Pos:  nozzle,
			Vel:  s.Vel.Scale(-1).Add(jitter),
			Life: constant.ThrustParticleLife,
		})
	}

	s.Vel = s.Vel.Scale(constant.ShipDamping)
	s.Pos = vmath.Wrap(s.Pos.Add(s.Vel), w.Width, w.Height)

	if s.Cooldown > 0 {
		s.Cooldown--
	}
	if s.Shield > 0 {
		s.Shield--
	}
}

func (g *Game) stepBullets() {
	w := &g.world
	for i := len(w.Bullets) - 1; i >= 0; i-- {
		b := &w.Bullets[i]
		b.Pos = vmath.Wrap(b.Pos.Add(b.Vel), w.Width, w.Height)
		b.Life--
		if b.Life <= 0 {
			w.Bullets = append(w.Bullets[:i], w.Bullets[i+1:]...)
		}
	}
}

// stepAsteroids moves rocks and resolves ship and bullet hits
// Children from a split are appended past the cursor and first move on the next step
func (g *Game) stepAsteroids() {
	w := &g.world
	for i := len(w.Asteroids) - 1; i >= 0; i-- {
		a := &w.Asteroids[i]
		a.Pos = vmath.Wrap(a.Pos.Add(a.Vel), w.Width, w.Height)

		if w.State == StatePlaying && vmath.CirclesOverlap(w.Ship.Pos, a.Pos, a.Radius+constant.ShipRadius) {
			g.shipHit(a)
		}

		g.bulletHit(i)
	}
}

// shipHit bounces a shielded ship off the rock or ends the round
func (g *Game) shipHit(a *Asteroid) {
	w := &g.world
	s := &w.Ship
	if s.Shield > 0 {
		away := math.Atan2(s.Pos.Y-a.Pos.Y, s.Pos.X-a.Pos.X)
		s.Vel = vmath.FromAngle(away, constant.ShipShieldBounce)
		g.cues.Emit(audio.CueCrash)
		return
	}
	g.explode(s.Pos, constant.ShipDeathParticle)
	g.cues.Emit(audio.CueCrash)
	w.State = StateGameOver
}

// bulletHit resolves the first bullet inside rock i; returns true if the rock was destroyed
func (g *Game) bulletHit(i int) bool {
	w := &g.world
	a := w.Asteroids[i]

	for j := len(w.Bullets) - 1; j >= 0; j-- {
		if !vmath.CirclesOverlap(w.Bullets[j].Pos, a.Pos, a.Radius) {
			continue
		}

		g.explode(a.Pos, int(a.Radius))
		g.cues.Emit(audio.CueCrash)
		w.Bullets = append(w.Bullets[:j], w.Bullets[j+1:]...)
		g.addScore(int((constant.AsteroidScoreBase - a.Radius) * constant.AsteroidScoreFactor))

		if a.Radius > constant.AsteroidMinSplit {
			for k := 0; k < 2; k++ {
				g.spawnRock(a.Pos, a.Radius/2, constant.AsteroidSplitSpeed)
			}
		}
		w.Asteroids = append(w.Asteroids[:i], w.Asteroids[i+1:]...)
		return true
	}
	return false
}

func (g *Game) stepParticles() {
	w := &g.world
	for i := len(w.Particles) - 1; i >= 0; i-- {
		p := &w.Particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life <= 0 {
			w.Particles = append(w.Particles[:i], w.Particles[i+1:]...)
		}
	}
}
