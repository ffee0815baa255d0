package entity

import (
	"errors"
	"fmt"
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// ErrInvalidMovement is returned when movement tunables are out of range
var ErrInvalidMovement = errors.New("invalid movement config")

// LookDirection is the horizontal direction a character faces
type LookDirection int

const (
	Left LookDirection = iota
	Right
)

// String returns the string representation of the direction
func (d LookDirection) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Direction records the last direction the character actively moved in
type Direction struct {
	Value LookDirection
}

// Movement holds the per-character movement tunables.
// Speeds are world units per second, acceleration is applied once per tick.
type Movement struct {
	MaxSpeed               float64
	HorizontalAcceleration float64
	JumpPower              float64
	AirForwardMaxSpeed     float64
	AirBackwardMaxSpeed    float64
	RisingGravityScale     float64
	FallingGravityScale    float64
	CommitJumpDirection    bool
}

// Validate checks that no speed, acceleration or scale is negative
func (m Movement) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"max_speed", m.MaxSpeed},
		{"horizontal_acceleration", m.HorizontalAcceleration},
		{"jump_power", m.JumpPower},
		{"air_forward_max_speed", m.AirForwardMaxSpeed},
		{"air_backward_max_speed", m.AirBackwardMaxSpeed},
		{"rising_gravity_scale", m.RisingGravityScale},
		{"falling_gravity_scale", m.FallingGravityScale},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s is %v", ErrInvalidMovement, f.name, f.value)
		}
	}
	return nil
}

// ButtonEvent is the per-tick state of one logical button
type ButtonEvent struct {
	Down              bool // currently held
	PressedThisFrame  bool
	ReleasedThisFrame bool
}

// GameplayInputs maps the logical actions to their button state.
// Overwritten every tick by the input system.
type GameplayInputs struct {
	MoveLeft  ButtonEvent
	MoveRight ButtonEvent
	Jump      ButtonEvent
}
