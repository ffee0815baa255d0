package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
	"github.com/younwookim/jumper/internal/infrastructure/config"
	"github.com/younwookim/jumper/internal/physics"
)

// fakeBodies is an in-memory BodyTable
type fakeBodies struct {
	vel    map[physics.BodyHandle]physics.Vec2
	scale  map[physics.BodyHandle]float64
	writes int
}

func newFakeBodies() *fakeBodies {
	return &fakeBodies{
		vel:   make(map[physics.BodyHandle]physics.Vec2),
		scale: make(map[physics.BodyHandle]float64),
	}
}

func (f *fakeBodies) add(h physics.BodyHandle, v physics.Vec2) {
	f.vel[h] = v
	f.scale[h] = 1
}

func (f *fakeBodies) LinearVelocity(h physics.BodyHandle) (physics.Vec2, bool) {
	v, ok := f.vel[h]
	return v, ok
}

func (f *fakeBodies) SetLinearVelocity(h physics.BodyHandle, v physics.Vec2, wake bool) bool {
	if _, ok := f.vel[h]; !ok {
		return false
	}
	f.vel[h] = v
	f.writes++
	return true
}

func (f *fakeBodies) SetGravityScale(h physics.BodyHandle, scale float64) bool {
	if _, ok := f.scale[h]; !ok {
		return false
	}
	f.scale[h] = scale
	return true
}

// keySet is a KeySource holding exactly the listed keys
type keySet map[ebiten.Key]bool

func (k keySet) IsKeyPressed(key ebiten.Key) bool {
	return k[key]
}

func createTestMovement() entity.Movement {
	return entity.Movement{
		MaxSpeed:               20,
		HorizontalAcceleration: 5,
		JumpPower:              10,
		AirForwardMaxSpeed:     15,
		AirBackwardMaxSpeed:    7,
		RisingGravityScale:     1,
		FallingGravityScale:    3,
		CommitJumpDirection:    true,
	}
}

// createTestWorld returns a world with one grounded character on body 1 at rest
func createTestWorld() (*ecs.World, *fakeBodies, *entity.Character) {
	w := ecs.NewWorld()
	bodies := newFakeBodies()
	bodies.add(1, physics.Vec2{})
	id := w.CreateCharacter(1, createTestMovement())
	return w, bodies, w.Character(id)
}

func createTestController(mode string) *Controller {
	cfg := config.Default()
	cfg.Input.EdgeMode = mode
	c, err := NewController(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

func hold(left, right, jump bool) RawInput {
	return RawInput{Left: left, Right: right, Jump: jump}
}
