package system

import (
	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
)

// ApexSystem marks airborne characters whose vertical velocity turned negative
type ApexSystem struct {
	gravityScaling bool
}

// NewApexSystem creates a new apex system.
// With gravityScaling set, reaching the apex switches to the falling gravity scale.
func NewApexSystem(gravityScaling bool) *ApexSystem {
	return &ApexSystem{gravityScaling: gravityScaling}
}

// Update returns the characters that reached their apex this tick and
// the ones whose body could not be read
func (s *ApexSystem) Update(w *ecs.World, bodies BodyTable) (reached, skipped []entity.EntityID) {
	w.Each(func(c *entity.Character) {
		if !c.IsAirborne() || c.Flight.ReachedJumpApex {
			return
		}
		v, ok := bodies.LinearVelocity(c.Body)
		if !ok {
			skipped = append(skipped, c.ID)
			return
		}
		if v.Y >= 0 {
			return
		}
		c.Flight.ReachedJumpApex = true
		if s.gravityScaling {
			bodies.SetGravityScale(c.Body, c.Movement.FallingGravityScale)
		}
		reached = append(reached, c.ID)
	})
	return reached, skipped
}
