package system

import (
	"time"

	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
)

// CooldownSystem advances dash cooldowns and clears the finished ones
type CooldownSystem struct{}

// NewCooldownSystem creates a new cooldown system
func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

// Update ticks every running cooldown by dt.
// Returns the characters whose dash became available this tick.
func (s *CooldownSystem) Update(w *ecs.World, dt time.Duration) []entity.EntityID {
	var expired []entity.EntityID
	w.Each(func(c *entity.Character) {
		if c.DashCooldown == nil {
			return
		}
		if c.DashCooldown.Timer.Tick(dt) {
			c.DashCooldown = nil
			expired = append(expired, c.ID)
		}
	})
	return expired
}
