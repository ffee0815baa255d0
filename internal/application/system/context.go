package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
	"github.com/younwookim/jumper/internal/physics"
)

// BodyTable is the slice of the physics space the movement systems need.
// Every method reports false when the handle does not resolve to a body.
type BodyTable interface {
	LinearVelocity(h physics.BodyHandle) (physics.Vec2, bool)
	SetLinearVelocity(h physics.BodyHandle, v physics.Vec2, wake bool) bool
	SetGravityScale(h physics.BodyHandle, scale float64) bool
}

// ContactSource yields contact events in FIFO order until empty
type ContactSource interface {
	Pop() (physics.ContactEvent, bool)
}

// KeySource answers whether a physical key is currently held
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the live keyboard through ebiten
type EbitenKeys struct{}

// IsKeyPressed implements KeySource
func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// SimContext is everything one simulation tick reads and writes.
// Each system mutates only the bodies of the characters it updates.
type SimContext struct {
	World    *ecs.World
	Bodies   BodyTable
	Contacts ContactSource // drained only by the grounding system
	Keys     KeySource     // nil means no key is held
}

// TickReport lists the state transitions of one tick
type TickReport struct {
	Input           RawInput
	CooldownExpired []entity.EntityID
	Jumped          []entity.EntityID
	Landed          []entity.EntityID
	ApexReached     []entity.EntityID
	Skipped         []entity.EntityID // body handle did not resolve
}

// Empty returns true when nothing changed state this tick
func (r TickReport) Empty() bool {
	return len(r.CooldownExpired) == 0 && len(r.Jumped) == 0 && len(r.Landed) == 0 &&
		len(r.ApexReached) == 0 && len(r.Skipped) == 0
}

func appendUnique(dst []entity.EntityID, ids ...entity.EntityID) []entity.EntityID {
	for _, id := range ids {
		found := false
		for _, have := range dst {
			if have == id {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, id)
		}
	}
	return dst
}
