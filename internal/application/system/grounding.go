package system

import (
	"slices"

	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
	"github.com/younwookim/jumper/internal/physics"
)

// GroundingSystem lands airborne characters on contact-start events
type GroundingSystem struct {
	gravityScaling bool
}

// NewGroundingSystem creates a new grounding system.
// With gravityScaling set, landing restores the body's gravity scale to 1.
func NewGroundingSystem(gravityScaling bool) *GroundingSystem {
	return &GroundingSystem{gravityScaling: gravityScaling}
}

// Update drains contacts and returns the characters that landed.
// Contact-stopped events are consumed and ignored. Characters in tookOff
// jumped this tick; their contacts predate the takeoff and do not land them.
func (s *GroundingSystem) Update(w *ecs.World, contacts ContactSource, bodies BodyTable, tookOff []entity.EntityID) []entity.EntityID {
	if contacts == nil {
		return nil
	}

	var landed []entity.EntityID
	for {
		ev, ok := contacts.Pop()
		if !ok {
			break
		}
		if ev.Kind != physics.ContactStarted {
			continue
		}
		for _, h := range [2]physics.BodyHandle{ev.A, ev.B} {
			c, ok := w.CharacterByBody(h)
			if !ok || !c.IsAirborne() || slices.Contains(tookOff, c.ID) {
				continue
			}
			c.Flight = entity.Grounded()
			if s.gravityScaling && bodies != nil {
				bodies.SetGravityScale(c.Body, 1)
			}
			landed = append(landed, c.ID)
		}
	}
	return landed
}
