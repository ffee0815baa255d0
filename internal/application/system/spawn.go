package system

import (
	"fmt"

	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
	"github.com/younwookim/jumper/internal/infrastructure/config"
	"github.com/younwookim/jumper/internal/physics"
)

// BodyBuilder adds bodies to a physics space
type BodyBuilder interface {
	AddBody(def physics.BodyDef) physics.BodyHandle
}

// CharacterSpec describes a character to spawn; X, Y is the body center
type CharacterSpec struct {
	X, Y          float64
	Width, Height float64
	Mass          float64
	Friction      float64
	Movement      entity.Movement
}

// CharacterSpecFromConfig converts the character config block into a spawn spec
func CharacterSpecFromConfig(cfg config.CharacterConfig) CharacterSpec {
	return CharacterSpec{
		X:        cfg.Spawn.X,
		Y:        cfg.Spawn.Y,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Mass:     cfg.Mass,
		Friction: cfg.Friction,
		Movement: cfg.Movement.ToEntity(),
	}
}

// SpawnCharacter creates a grounded character backed by a dynamic,
// rotation-locked body
func SpawnCharacter(w *ecs.World, space BodyBuilder, spec CharacterSpec) (entity.EntityID, error) {
	if err := spec.Movement.Validate(); err != nil {
		return 0, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("character size must be positive, got %vx%v", spec.Width, spec.Height)
	}

	h := space.AddBody(physics.BodyDef{
		Kind:         physics.BodyDynamic,
		X:            spec.X,
		Y:            spec.Y,
		Width:        spec.Width,
		Height:       spec.Height,
		Mass:         spec.Mass,
		Friction:     spec.Friction,
		LockRotation: true,
		GravityScale: 1,
	})
	return w.CreateCharacter(h, spec.Movement), nil
}

// BuildArena adds one static body per ground box and returns their handles
func BuildArena(space BodyBuilder, cfg config.ArenaConfig) []physics.BodyHandle {
	handles := make([]physics.BodyHandle, 0, len(cfg.Ground))
	for _, box := range cfg.Ground {
		handles = append(handles, space.AddBody(physics.BodyDef{
			Kind:     physics.BodyStatic,
			X:        box.X,
			Y:        box.Y,
			Width:    box.Width,
			Height:   box.Height,
			Friction: 1,
		}))
	}
	return handles
}
