package entity

import (
	"time"

	"github.com/younwookim/jumper/internal/physics"
)

// Character is a player-controlled entity.
// The rigid body lives in the physics space and is referenced by handle only.
type Character struct {
	ID   EntityID
	Body physics.BodyHandle

	Movement  Movement
	Direction Direction
	Inputs    GameplayInputs
	Flight    Flight

	// nil while dash is available
	DashCooldown *DashCooldown
}

// NewCharacter creates a grounded character facing right
func NewCharacter(id EntityID, body physics.BodyHandle, movement Movement) *Character {
	return &Character{
		ID:        id,
		Body:      body,
		Movement:  movement,
		Direction: Direction{Value: Right},
		Flight:    Grounded(),
	}
}

// IsAirborne returns true while the character is off the ground
func (c *Character) IsAirborne() bool {
	return c.Flight.IsAirborne()
}

// DashReady returns true when no dash cooldown is running
func (c *Character) DashReady() bool {
	return c.DashCooldown == nil
}

// StartDashCooldown makes dash unavailable for d
func (c *Character) StartDashCooldown(d time.Duration) {
	c.DashCooldown = &DashCooldown{Timer: NewTimer(d)}
}
