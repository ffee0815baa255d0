package system

import (
	"log"
	"time"

	"github.com/younwookim/jumper/internal/infrastructure/config"
)

// Controller runs the movement systems in their fixed per-tick order:
// input, cooldown, movement, grounding, apex
type Controller struct {
	Input     *InputSystem
	Cooldown  *CooldownSystem
	Movement  *MovementSystem
	Grounding *GroundingSystem
	Apex      *ApexSystem

	// Debug logs every state transition
	Debug bool
}

// NewController creates a controller from the game config
func NewController(cfg *config.GameConfig) (*Controller, error) {
	input, err := NewInputSystem(cfg.Input)
	if err != nil {
		return nil, err
	}

	scaling := cfg.Physics.GravityScaling
	return &Controller{
		Input:     input,
		Cooldown:  NewCooldownSystem(),
		Movement:  NewMovementSystem(scaling),
		Grounding: NewGroundingSystem(scaling),
		Apex:      NewApexSystem(scaling),
	}, nil
}

// Tick polls ctx.Keys and runs one simulation tick
func (c *Controller) Tick(ctx *SimContext, dt time.Duration) TickReport {
	return c.TickWithInput(ctx, c.Input.Poll(ctx.Keys), dt)
}

// TickWithInput runs one simulation tick with an already sampled input.
// The physics space is stepped by the caller after this returns.
func (c *Controller) TickWithInput(ctx *SimContext, raw RawInput, dt time.Duration) TickReport {
	report := TickReport{Input: raw}

	c.Input.CaptureRaw(ctx.World, raw)
	report.CooldownExpired = c.Cooldown.Update(ctx.World, dt)

	moved := c.Movement.Update(ctx.World, ctx.Bodies)
	report.Jumped = moved.Jumped
	report.Skipped = appendUnique(report.Skipped, moved.Skipped...)

	report.Landed = c.Grounding.Update(ctx.World, ctx.Contacts, ctx.Bodies, moved.Jumped)

	reached, skipped := c.Apex.Update(ctx.World, ctx.Bodies)
	report.ApexReached = reached
	report.Skipped = appendUnique(report.Skipped, skipped...)

	if c.Debug && !report.Empty() {
		logReport(report)
	}
	return report
}

func logReport(r TickReport) {
	for _, id := range r.Jumped {
		log.Printf("entity %d: jumped", id)
	}
	for _, id := range r.Landed {
		log.Printf("entity %d: landed", id)
	}
	for _, id := range r.ApexReached {
		log.Printf("entity %d: reached jump apex", id)
	}
	for _, id := range r.CooldownExpired {
		log.Printf("entity %d: dash ready", id)
	}
	for _, id := range r.Skipped {
		log.Printf("entity %d: body handle did not resolve, skipped", id)
	}
}
