package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
	"github.com/younwookim/jumper/internal/infrastructure/config"
)

// InputSystem turns held keys into per-action button events
type InputSystem struct {
	moveLeft  []ebiten.Key
	moveRight []ebiten.Key
	jump      []ebiten.Key
	edgeMode  string
}

// RawInput is the held state of each logical action for one tick
type RawInput struct {
	Left  bool
	Right bool
	Jump  bool
}

// NewInputSystem creates an input system from the configured bindings
func NewInputSystem(cfg config.InputConfig) (*InputSystem, error) {
	s := &InputSystem{edgeMode: cfg.EdgeMode}
	if s.edgeMode == "" {
		s.edgeMode = config.EdgeModeDetect
	}

	var err error
	if s.moveLeft, err = parseKeys(cfg.Bindings.MoveLeft); err != nil {
		return nil, fmt.Errorf("move_left binding: %w", err)
	}
	if s.moveRight, err = parseKeys(cfg.Bindings.MoveRight); err != nil {
		return nil, fmt.Errorf("move_right binding: %w", err)
	}
	if s.jump, err = parseKeys(cfg.Bindings.Jump); err != nil {
		return nil, fmt.Errorf("jump binding: %w", err)
	}

	return s, nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// EdgeMode returns the configured edge mode
func (s *InputSystem) EdgeMode() string {
	return s.edgeMode
}

// Poll reads the current hold state of every bound key.
// Keys bound to the same action are OR-ed; a nil source holds nothing.
func (s *InputSystem) Poll(keys KeySource) RawInput {
	if keys == nil {
		return RawInput{}
	}
	return RawInput{
		Left:  anyPressed(keys, s.moveLeft),
		Right: anyPressed(keys, s.moveRight),
		Jump:  anyPressed(keys, s.jump),
	}
}

func anyPressed(keys KeySource, bound []ebiten.Key) bool {
	for _, k := range bound {
		if keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Apply overwrites inputs with this tick's button events.
// The previous Down values serve as last tick's snapshot for edge detection.
func (s *InputSystem) Apply(raw RawInput, inputs *entity.GameplayInputs) {
	inputs.MoveLeft = s.button(raw.Left, inputs.MoveLeft.Down)
	inputs.MoveRight = s.button(raw.Right, inputs.MoveRight.Down)
	inputs.Jump = s.button(raw.Jump, inputs.Jump.Down)
}

func (s *InputSystem) button(held, wasHeld bool) entity.ButtonEvent {
	if s.edgeMode == config.EdgeModeLegacy {
		return entity.ButtonEvent{
			Down:              held,
			PressedThisFrame:  held,
			ReleasedThisFrame: held,
		}
	}
	return entity.ButtonEvent{
		Down:              held,
		PressedThisFrame:  held && !wasHeld,
		ReleasedThisFrame: !held && wasHeld,
	}
}

// Capture polls keys once and applies the result to every character
func (s *InputSystem) Capture(w *ecs.World, keys KeySource) RawInput {
	raw := s.Poll(keys)
	s.CaptureRaw(w, raw)
	return raw
}

// CaptureRaw applies an already polled (or replayed) input to every character
func (s *InputSystem) CaptureRaw(w *ecs.World, raw RawInput) {
	w.Each(func(c *entity.Character) {
		s.Apply(raw, &c.Inputs)
	})
}
