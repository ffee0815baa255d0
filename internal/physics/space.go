package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeStatic cp.CollisionType = iota + 1
	collisionTypeDynamic
)

// body is the bookkeeping record behind a BodyHandle
type body struct {
	handle       BodyHandle
	kind         BodyKind
	cp           *cp.Body
	shape        *cp.Shape
	gravityScale float64
}

// Space owns the chipmunk space, every body in it, and the contact queue.
type Space struct {
	space  *cp.Space
	events *EventQueue

	nextHandle BodyHandle
	bodies     map[BodyHandle]*body
	shapes     map[*cp.Shape]BodyHandle
}

// NewSpace creates a space with the given gravity (Y up) and solver iterations.
func NewSpace(gravity Vec2, iterations int) *Space {
	space := cp.NewSpace()
	if iterations > 0 {
		space.Iterations = uint(iterations)
	}
	space.SetGravity(cp.Vector{X: gravity.X, Y: gravity.Y})

	s := &Space{
		space:      space,
		events:     NewEventQueue(),
		nextHandle: 1,
		bodies:     make(map[BodyHandle]*body),
		shapes:     make(map[*cp.Shape]BodyHandle),
	}
	s.setupHandlers()
	return s
}

// Events returns the contact queue filled by Step
func (s *Space) Events() *EventQueue {
	return s.events
}

// BodyCount returns the number of bodies added and not removed
func (s *Space) BodyCount() int {
	return len(s.bodies)
}

// AddBody creates a box body and returns its handle
func (s *Space) AddBody(def BodyDef) BodyHandle {
	h := s.nextHandle
	s.nextHandle++

	rec := &body{handle: h, kind: def.Kind, gravityScale: 1}

	if def.Kind == BodyStatic {
		bb := cp.BB{
			L: def.X - def.Width/2,
			B: def.Y - def.Height/2,
			R: def.X + def.Width/2,
			T: def.Y + def.Height/2,
		}
		shape := cp.NewBox2(s.space.StaticBody, bb, 0)
		shape.SetFriction(def.Friction)
		shape.SetCollisionType(collisionTypeStatic)
		s.space.AddShape(shape)

		rec.cp = s.space.StaticBody
		rec.shape = shape
	} else {
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := cp.MomentForBox(mass, def.Width, def.Height)
		if def.LockRotation {
			moment = math.Inf(1)
		}
		if def.GravityScale > 0 {
			rec.gravityScale = def.GravityScale
		}

		cpBody := cp.NewBody(mass, moment)
		cpBody.SetPosition(cp.Vector{X: def.X, Y: def.Y})
		cpBody.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(b, gravity.Mult(rec.gravityScale), damping, dt)
		})
		s.space.AddBody(cpBody)

		shape := cp.NewBox(cpBody, def.Width, def.Height, 0)
		shape.SetFriction(def.Friction)
		shape.SetCollisionType(collisionTypeDynamic)
		s.space.AddShape(shape)

		rec.cp = cpBody
		rec.shape = shape
	}

	s.bodies[h] = rec
	s.shapes[rec.shape] = h
	return h
}

// RemoveBody removes a body and its shape. Returns false for unknown handles.
func (s *Space) RemoveBody(h BodyHandle) bool {
	rec, ok := s.bodies[h]
	if !ok {
		return false
	}
	s.space.RemoveShape(rec.shape)
	if rec.kind == BodyDynamic {
		s.space.RemoveBody(rec.cp)
	}
	delete(s.shapes, rec.shape)
	delete(s.bodies, h)
	return true
}

// LinearVelocity returns the body's current velocity
func (s *Space) LinearVelocity(h BodyHandle) (Vec2, bool) {
	rec, ok := s.bodies[h]
	if !ok {
		return Vec2{}, false
	}
	if rec.kind == BodyStatic {
		return Vec2{}, true
	}
	v := rec.cp.Velocity()
	return Vec2{X: v.X, Y: v.Y}, true
}

// SetLinearVelocity replaces the body's velocity. wake activates a sleeping body.
// Static bodies ignore the write but still report true.
func (s *Space) SetLinearVelocity(h BodyHandle, v Vec2, wake bool) bool {
	rec, ok := s.bodies[h]
	if !ok {
		return false
	}
	if rec.kind == BodyStatic {
		return true
	}
	rec.cp.SetVelocity(v.X, v.Y)
	if wake {
		rec.cp.Activate()
	}
	return true
}

// GravityScale returns the multiplier applied to world gravity for the body
func (s *Space) GravityScale(h BodyHandle) (float64, bool) {
	rec, ok := s.bodies[h]
	if !ok {
		return 0, false
	}
	return rec.gravityScale, true
}

// SetGravityScale sets the multiplier applied to world gravity on the next step
func (s *Space) SetGravityScale(h BodyHandle, scale float64) bool {
	rec, ok := s.bodies[h]
	if !ok {
		return false
	}
	rec.gravityScale = scale
	return true
}

// Position returns the body's center in world units.
// Static boxes report the center of their shape.
func (s *Space) Position(h BodyHandle) (Vec2, bool) {
	rec, ok := s.bodies[h]
	if !ok {
		return Vec2{}, false
	}
	if rec.kind == BodyStatic {
		bb := rec.shape.BB()
		return Vec2{X: (bb.L + bb.R) / 2, Y: (bb.B + bb.T) / 2}, true
	}
	p := rec.cp.Position()
	return Vec2{X: p.X, Y: p.Y}, true
}

// Bounds returns the body's axis-aligned box as left, bottom, right, top
func (s *Space) Bounds(h BodyHandle) (l, b, r, t float64, ok bool) {
	rec, found := s.bodies[h]
	if !found {
		return 0, 0, 0, 0, false
	}
	bb := rec.shape.BB()
	return bb.L, bb.B, bb.R, bb.T, true
}

// Step advances the simulation by dt seconds
func (s *Space) Step(dt float64) {
	s.space.Step(dt)
}

func (s *Space) setupHandlers() {
	begin := func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		s.pushContact(ContactStarted, arb)
		return true
	}
	separate := func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		s.pushContact(ContactStopped, arb)
	}

	for _, other := range []cp.CollisionType{collisionTypeStatic, collisionTypeDynamic} {
		handler := s.space.NewCollisionHandler(collisionTypeDynamic, other)
		handler.BeginFunc = begin
		handler.SeparateFunc = separate
	}
}

func (s *Space) pushContact(kind ContactKind, arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	a, okA := s.shapes[shapeA]
	b, okB := s.shapes[shapeB]
	if !okA && !okB {
		return
	}
	s.events.Push(ContactEvent{Kind: kind, A: a, B: b})
}
