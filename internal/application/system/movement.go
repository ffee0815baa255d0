package system

import (
	"math"

	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
	"github.com/younwookim/jumper/internal/physics"
)

// MovementSystem applies horizontal movement and jumps to characters.
// Grounded and airborne characters are dispatched on their flight state.
type MovementSystem struct {
	gravityScaling bool
}

// MovementResult lists what the movement pass did
type MovementResult struct {
	Jumped  []entity.EntityID
	Skipped []entity.EntityID
}

// NewMovementSystem creates a new movement system.
// With gravityScaling set, a jump switches the body to its rising gravity scale.
func NewMovementSystem(gravityScaling bool) *MovementSystem {
	return &MovementSystem{gravityScaling: gravityScaling}
}

// Update moves every character once
func (s *MovementSystem) Update(w *ecs.World, bodies BodyTable) MovementResult {
	var res MovementResult
	w.Each(func(c *entity.Character) {
		v, ok := bodies.LinearVelocity(c.Body)
		if !ok {
			res.Skipped = append(res.Skipped, c.ID)
			return
		}

		switch c.Flight.Mode {
		case entity.FlightGrounded:
			if s.moveGrounded(c, &v) {
				res.Jumped = append(res.Jumped, c.ID)
				if s.gravityScaling {
					bodies.SetGravityScale(c.Body, c.Movement.RisingGravityScale)
				}
			}
		case entity.FlightAirborne:
			s.moveAirborne(c, &v)
		}

		bodies.SetLinearVelocity(c.Body, v, true)
	})
	return res
}

// moveGrounded updates v and the facing direction, returns true on takeoff
func (s *MovementSystem) moveGrounded(c *entity.Character, v *physics.Vec2) bool {
	m := c.Movement
	in := c.Inputs

	switch {
	case in.MoveRight.Down:
		c.Direction.Value = entity.Right
		v.X = accelerate(v.X, m.HorizontalAcceleration, m.MaxSpeed)
	case in.MoveLeft.Down:
		c.Direction.Value = entity.Left
		v.X = accelerate(v.X, -m.HorizontalAcceleration, m.MaxSpeed)
	default:
		v.X = 0
	}

	if !in.Jump.PressedThisFrame {
		return false
	}
	v.Y = m.JumpPower
	c.Flight = entity.TakeOff(c.Direction.Value)
	return true
}

// moveAirborne updates the horizontal part of v only
func (s *MovementSystem) moveAirborne(c *entity.Character, v *physics.Vec2) {
	m := c.Movement
	in := c.Inputs

	switch {
	case in.MoveRight.Down:
		v.X = accelerate(v.X, m.HorizontalAcceleration, AirMaxSpeed(entity.Right, c.Flight, m))
	case in.MoveLeft.Down:
		v.X = accelerate(v.X, -m.HorizontalAcceleration, AirMaxSpeed(entity.Left, c.Flight, m))
	default:
		v.X = 0
	}
}

// AirMaxSpeed returns the horizontal speed cap for moving toward input while airborne.
// When the jump direction is committed, moving the takeoff way uses the forward
// cap and moving against it uses the backward cap.
func AirMaxSpeed(input entity.LookDirection, flight entity.Flight, m entity.Movement) float64 {
	if !m.CommitJumpDirection {
		return m.MaxSpeed
	}
	if input == flight.Takeoff {
		return m.AirForwardMaxSpeed
	}
	return m.AirBackwardMaxSpeed
}

// accelerate adds accel to vx and clamps the result to [-limit, limit] on
// the side accel points to
func accelerate(vx, accel, limit float64) float64 {
	if accel >= 0 {
		return math.Min(vx+accel, limit)
	}
	return math.Max(vx+accel, -limit)
}
