package vmath

import "math"

// Vec2F is a float64 2D vector for continuous-space simulation
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{x, y}
}

func (v Vec2F) Add(o Vec2F) Vec2F {
	return Vec2F{v.X + o.X, v.Y + o.Y}
}

func (v Vec2F) Sub(o Vec2F) Vec2F {
	return Vec2F{v.X - o.X, v.Y - o.Y}
}

func (v Vec2F) Scale(s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func (v Vec2F) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2F) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Normalize returns the unit vector, zero-safe
func (v Vec2F) Normalize() Vec2F {
	mag := v.Mag()
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// ClampMag limits the vector to maxMag while preserving direction
func (v Vec2F) ClampMag(maxMag float64) Vec2F {
	mag := v.Mag()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Scale(maxMag / mag)
}

// Dist returns Euclidean distance between two points
func Dist(a, b Vec2F) float64 {
	return b.Sub(a).Mag()
}

// FromAngle returns a vector of length mag pointing along angle (radians)
func FromAngle(angle, mag float64) Vec2F {
	return Vec2F{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// Rotate rotates v by angle (radians) counter-clockwise in screen-down space
func (v Vec2F) Rotate(angle float64) Vec2F {
	sin, cos := math.Sincos(angle)
	return Vec2F{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Wrap folds a point into the torus [0,w]x[0,h]
// Crossing one edge re-enters at the opposite edge, one world width per step
func Wrap(p Vec2F, w, h float64) Vec2F {
	if p.X < 0 {
		p.X += w
	}
	if p.X > w {
		p.X -= w
	}
	if p.Y < 0 {
		p.Y += h
	}
	if p.Y > h {
		p.Y -= h
	}
	return p
}

// CirclesOverlap reports whether distance(a,b) < r
func CirclesOverlap(a, b Vec2F, r float64) bool {
	d := b.Sub(a)
	return d.MagSq() < r*r
}
