// Package keychain simulates the damped spring charm hanging off the device
package keychain

import (
	"time"

	"github.com/lixenwraith/retro-handheld/constant"
	"github.com/lixenwraith/retro-handheld/engine"
	"github.com/lixenwraith/retro-handheld/vmath"
)

// GrabRadius is how close a pointer must be to the charm to start a drag, in pixels
const GrabRadius = 16.0

// Spring pulls a charm toward a point below a moving anchor
// Units are pixels; tension, gravity and friction apply once per fixed step
type Spring struct {
	Pos      vmath.Vec2F
	Vel      vmath.Vec2F
	Dragging bool

	anchor  vmath.Vec2F
	stepper *engine.FixedStepper
}

// NewSpring places the charm at rest offset below anchor
func NewSpring(anchor vmath.Vec2F) *Spring {
	return &Spring{
		Pos:     anchor.Add(vmath.V2F(0, constant.KeychainInitOffset)),
		anchor:  anchor,
		stepper: engine.NewFixedStepper(constant.FixedStep, constant.MaxStepsPerFrame),
	}
}

// Anchor returns the current attachment point
func (s *Spring) Anchor() vmath.Vec2F { return s.anchor }

// SetAnchor moves the attachment point; the charm follows through the spring
func (s *Spring) SetAnchor(p vmath.Vec2F) { s.anchor = p }

// Target is the point the spring pulls toward
func (s *Spring) Target() vmath.Vec2F {
	return s.anchor.Add(vmath.V2F(0, constant.KeychainTargetOffset))
}

// Step integrates one fixed step; a dragged charm does not move on its own
func (s *Spring) Step() {
	if s.Dragging {
		return
	}
	s.Vel = s.Vel.Add(s.Target().Sub(s.Pos).Scale(constant.KeychainTension))
	s.Vel.Y += constant.KeychainGravity
	s.Vel = s.Vel.Scale(constant.KeychainFriction)
	s.Pos = s.Pos.Add(s.Vel)
}

// Advance runs as many fixed steps as dt covers
func (s *Spring) Advance(dt time.Duration) {
	for n := s.stepper.Advance(dt); n > 0; n-- {
		s.Step()
	}
}

// HitTest reports whether p is on the charm
func (s *Spring) HitTest(p vmath.Vec2F) bool {
	return vmath.Dist(p, s.Pos) <= GrabRadius
}

// BeginDrag grabs the charm at p and drops its momentum
func (s *Spring) BeginDrag(p vmath.Vec2F) {
	s.Dragging = true
	s.Vel = vmath.Vec2F{}
	s.DragTo(p)
}

// DragTo snaps the charm to p, clamped to the maximum radius around the anchor with direction kept
func (s *Spring) DragTo(p vmath.Vec2F) {
	if !s.Dragging {
		return
	}
	offset := p.Sub(s.anchor).ClampMag(constant.KeychainMaxRadius)
	s.Pos = s.anchor.Add(offset)
}

// EndDrag releases the charm; the spring takes over from the current position
func (s *Spring) EndDrag() {
	s.Dragging = false
	s.stepper.Reset()
}
