// Package session wires a world, a physics space and the movement
// controller into one steppable simulation.
package session

import (
	"fmt"
	"time"

	"github.com/younwookim/jumper/internal/application/system"
	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
	"github.com/younwookim/jumper/internal/infrastructure/config"
	"github.com/younwookim/jumper/internal/physics"
)

// Session is one running simulation
type Session struct {
	config     *config.GameConfig
	world      *ecs.World
	space      *physics.Space
	controller *system.Controller
	ground     []physics.BodyHandle
	player     entity.EntityID
	dt         time.Duration
	frame      int
}

// Snapshot is the observable state of a character after a tick
type Snapshot struct {
	Frame     int
	Position  physics.Vec2
	Velocity  physics.Vec2
	Flight    entity.Flight
	Direction entity.LookDirection
	DashReady bool
}

// New builds the arena and spawns the player described by cfg
func New(cfg *config.GameConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctrl, err := system.NewController(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	space := physics.NewSpace(physics.Vec2{Y: -cfg.Physics.Gravity}, cfg.Physics.Iterations)
	world := ecs.NewWorld()
	ground := system.BuildArena(space, cfg.Arena)

	player, err := system.SpawnCharacter(world, space, system.CharacterSpecFromConfig(cfg.Character))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn player: %w", err)
	}

	return &Session{
		config:     cfg,
		world:      world,
		space:      space,
		controller: ctrl,
		ground:     ground,
		player:     player,
		dt:         time.Second / time.Duration(cfg.Display.TPS),
	}, nil
}

// SetDebug toggles per-tick transition logging
func (s *Session) SetDebug(on bool) {
	s.controller.Debug = on
}

// DT returns the fixed tick length
func (s *Session) DT() time.Duration {
	return s.dt
}

// Frame returns the number of ticks run so far
func (s *Session) Frame() int {
	return s.frame
}

// Config returns the config the session was built from
func (s *Session) Config() *config.GameConfig {
	return s.config
}

// World returns the entity world
func (s *Session) World() *ecs.World {
	return s.world
}

// Space returns the physics space
func (s *Session) Space() *physics.Space {
	return s.space
}

// Ground returns the static arena bodies
func (s *Session) Ground() []physics.BodyHandle {
	return s.ground
}

// PlayerID returns the player's entity
func (s *Session) PlayerID() entity.EntityID {
	return s.player
}

// EdgeMode returns the input edge mode in effect
func (s *Session) EdgeMode() string {
	return s.controller.Input.EdgeMode()
}

// Step runs the controller with raw and then advances physics by one tick
func (s *Session) Step(raw system.RawInput) system.TickReport {
	ctx := &system.SimContext{
		World:    s.world,
		Bodies:   s.space,
		Contacts: s.space.Events(),
	}
	report := s.controller.TickWithInput(ctx, raw, s.dt)
	s.space.Step(s.dt.Seconds())
	s.frame++
	return report
}

// StepKeys polls keys and steps once; the polled input is in the report
func (s *Session) StepKeys(keys system.KeySource) system.TickReport {
	return s.Step(s.controller.Input.Poll(keys))
}

// ApplyMovement replaces the movement tunables of every character
func (s *Session) ApplyMovement(m entity.Movement) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.world.Each(func(c *entity.Character) {
		c.Movement = m
	})
	s.config.Character.Movement = config.MovementConfig{
		MaxSpeed:               m.MaxSpeed,
		HorizontalAcceleration: m.HorizontalAcceleration,
		JumpPower:              m.JumpPower,
		AirForwardMaxSpeed:     m.AirForwardMaxSpeed,
		AirBackwardMaxSpeed:    m.AirBackwardMaxSpeed,
		RisingGravityScale:     m.RisingGravityScale,
		FallingGravityScale:    m.FallingGravityScale,
		CommitJumpDirection:    m.CommitJumpDirection,
	}
	return nil
}

// StartDashCooldown puts the player's dash on cooldown for the configured time
func (s *Session) StartDashCooldown() {
	if c := s.world.Character(s.player); c != nil {
		c.StartDashCooldown(time.Duration(s.config.Dash.Cooldown * float64(time.Second)))
	}
}

// Player returns a snapshot of the player; ok is false if it is gone
func (s *Session) Player() (Snapshot, bool) {
	c := s.world.Character(s.player)
	if c == nil {
		return Snapshot{}, false
	}
	pos, _ := s.space.Position(c.Body)
	vel, _ := s.space.LinearVelocity(c.Body)
	return Snapshot{
		Frame:     s.frame,
		Position:  pos,
		Velocity:  vel,
		Flight:    c.Flight,
		Direction: c.Direction.Value,
		DashReady: c.DashReady(),
	}, true
}
