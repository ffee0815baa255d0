package system

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/ecs"
	"github.com/younwookim/jumper/internal/infrastructure/config"
	"github.com/younwookim/jumper/internal/physics"
)

const testDT = time.Second / 60

func TestNewController(t *testing.T) {
	t.Run("builds every system", func(t *testing.T) {
		c, err := NewController(config.Default())
		require.NoError(t, err)
		assert.NotNil(t, c.Input)
		assert.NotNil(t, c.Cooldown)
		assert.NotNil(t, c.Movement)
		assert.NotNil(t, c.Grounding)
		assert.NotNil(t, c.Apex)
	})

	t.Run("bad binding fails", func(t *testing.T) {
		cfg := config.Default()
		cfg.Input.Bindings.MoveLeft = []string{"Nope"}
		_, err := NewController(cfg)
		assert.Error(t, err)
	})
}

func TestController_JumpArc(t *testing.T) {
	ctrl := createTestController(config.EdgeModeDetect)
	w, bodies, c := createTestWorld()
	contacts := physics.NewEventQueue()
	ctx := &SimContext{World: w, Bodies: bodies, Contacts: contacts}

	// tick 1: jump pressed
	r := ctrl.TickWithInput(ctx, hold(false, false, true), testDT)
	assert.Equal(t, []entity.EntityID{c.ID}, r.Jumped)
	assert.Equal(t, physics.Vec2{X: 0, Y: 10}, bodies.vel[1])
	assert.Equal(t, entity.Flight{Mode: entity.FlightAirborne, Takeoff: entity.Right}, c.Flight)
	assert.Equal(t, 1.0, bodies.scale[1])

	// tick 2: move right in the air
	r = ctrl.TickWithInput(ctx, hold(false, true, true), testDT)
	assert.Empty(t, r.Jumped)
	assert.Equal(t, physics.Vec2{X: 5, Y: 10}, bodies.vel[1])

	// tick 3: gravity has turned the body downward
	bodies.vel[1] = physics.Vec2{X: 5, Y: -2}
	r = ctrl.TickWithInput(ctx, hold(false, true, false), testDT)
	assert.Equal(t, []entity.EntityID{c.ID}, r.ApexReached)
	assert.True(t, c.Flight.ReachedJumpApex)
	assert.Equal(t, 3.0, bodies.scale[1])

	// tick 4: touched the ground
	contacts.Push(physics.ContactEvent{Kind: physics.ContactStarted, A: 1, B: 50})
	r = ctrl.TickWithInput(ctx, hold(false, false, false), testDT)
	assert.Equal(t, []entity.EntityID{c.ID}, r.Landed)
	assert.Equal(t, entity.Grounded(), c.Flight)
	assert.Equal(t, 1.0, bodies.scale[1])
}

func TestController_HeldJump(t *testing.T) {
	land := func(ctx *SimContext) {
		ctx.Contacts.(*physics.EventQueue).Push(physics.ContactEvent{Kind: physics.ContactStarted, A: 1, B: 50})
	}

	t.Run("edge mode needs a fresh press", func(t *testing.T) {
		ctrl := createTestController(config.EdgeModeDetect)
		w, bodies, c := createTestWorld()
		ctx := &SimContext{World: w, Bodies: bodies, Contacts: physics.NewEventQueue()}

		ctrl.TickWithInput(ctx, hold(false, false, true), testDT)
		land(ctx)
		ctrl.TickWithInput(ctx, hold(false, false, true), testDT)
		require.False(t, c.IsAirborne())

		r := ctrl.TickWithInput(ctx, hold(false, false, true), testDT)
		assert.Empty(t, r.Jumped)
		assert.False(t, c.IsAirborne())
	})

	t.Run("legacy mode jumps again while held", func(t *testing.T) {
		ctrl := createTestController(config.EdgeModeLegacy)
		w, bodies, c := createTestWorld()
		ctx := &SimContext{World: w, Bodies: bodies, Contacts: physics.NewEventQueue()}

		ctrl.TickWithInput(ctx, hold(false, false, true), testDT)
		land(ctx)
		ctrl.TickWithInput(ctx, hold(false, false, true), testDT)
		require.False(t, c.IsAirborne())

		r := ctrl.TickWithInput(ctx, hold(false, false, true), testDT)
		assert.Equal(t, []entity.EntityID{c.ID}, r.Jumped)
	})
}

func TestController_StaleContactKeepsJump(t *testing.T) {
	ctrl := createTestController(config.EdgeModeDetect)
	w, bodies, c := createTestWorld()
	contacts := physics.NewEventQueue()
	contacts.Push(physics.ContactEvent{Kind: physics.ContactStarted, A: 1, B: 50})
	ctx := &SimContext{World: w, Bodies: bodies, Contacts: contacts}

	r := ctrl.TickWithInput(ctx, hold(false, false, true), testDT)

	assert.Equal(t, []entity.EntityID{c.ID}, r.Jumped)
	assert.Empty(t, r.Landed, "contact queued before the takeoff does not land it")
	assert.Equal(t, 0, contacts.Len(), "stale contact is still consumed")
	assert.True(t, c.IsAirborne())
	assert.Equal(t, 10.0, bodies.vel[1].Y)

	// a second press while rising does nothing
	ctrl.TickWithInput(ctx, RawInput{}, testDT)
	r = ctrl.TickWithInput(ctx, hold(false, false, true), testDT)
	assert.Empty(t, r.Jumped)
	assert.True(t, c.IsAirborne())
}

func TestController_Tick(t *testing.T) {
	ctrl := createTestController(config.EdgeModeDetect)
	w, bodies, c := createTestWorld()

	t.Run("polls keys", func(t *testing.T) {
		ctx := &SimContext{World: w, Bodies: bodies, Keys: keySet{ebiten.KeyArrowRight: true}}
		r := ctrl.Tick(ctx, testDT)
		assert.Equal(t, hold(false, true, false), r.Input)
		assert.Equal(t, 5.0, bodies.vel[1].X)
	})

	t.Run("nil keys hold nothing", func(t *testing.T) {
		ctx := &SimContext{World: w, Bodies: bodies}
		r := ctrl.Tick(ctx, testDT)
		assert.Equal(t, RawInput{}, r.Input)
		assert.Equal(t, 0.0, bodies.vel[1].X)
		assert.True(t, r.Empty())
	})

	t.Run("cooldown expiry is reported", func(t *testing.T) {
		c.StartDashCooldown(testDT)
		r := ctrl.Tick(&SimContext{World: w, Bodies: bodies}, testDT)
		assert.Equal(t, []entity.EntityID{c.ID}, r.CooldownExpired)
		assert.False(t, r.Empty())
	})
}

func TestController_SkippedOnce(t *testing.T) {
	ctrl := createTestController(config.EdgeModeDetect)
	w, bodies, _ := createTestWorld()
	ghost := w.Character(w.CreateCharacter(77, createTestMovement()))
	ghost.Flight = entity.TakeOff(entity.Right)

	r := ctrl.TickWithInput(&SimContext{World: w, Bodies: bodies}, RawInput{}, testDT)

	assert.Equal(t, []entity.EntityID{ghost.ID}, r.Skipped, "movement and apex skips are merged")
}

func TestController_WithSpace(t *testing.T) {
	cfg := config.Default()
	space := physics.NewSpace(physics.Vec2{Y: -cfg.Physics.Gravity}, cfg.Physics.Iterations)
	w := ecs.NewWorld()

	BuildArena(space, cfg.Arena)
	ground := cfg.Arena.Ground[0]
	spec := CharacterSpecFromConfig(cfg.Character)
	spec.Y = ground.Y + ground.Height/2 + spec.Height/2 + 0.05
	id, err := SpawnCharacter(w, space, spec)
	require.NoError(t, err)
	c := w.Character(id)

	ctrl, err := NewController(cfg)
	require.NoError(t, err)
	ctx := &SimContext{World: w, Bodies: space, Contacts: space.Events()}
	step := func(raw RawInput) TickReport {
		r := ctrl.TickWithInput(ctx, raw, testDT)
		space.Step(testDT.Seconds())
		return r
	}

	for i := 0; i < 30; i++ {
		step(RawInput{})
	}
	require.False(t, c.IsAirborne())

	r := step(hold(false, false, true))
	require.Equal(t, []entity.EntityID{id}, r.Jumped)

	var sawApex, landed bool
	for i := 0; i < 600 && !landed; i++ {
		r = step(RawInput{})
		sawApex = sawApex || len(r.ApexReached) > 0
		landed = len(r.Landed) > 0
	}

	assert.True(t, sawApex, "apex reached before landing")
	assert.True(t, landed, "character lands again")
	assert.False(t, c.IsAirborne())
	scale, ok := space.GravityScale(c.Body)
	require.True(t, ok)
	assert.Equal(t, 1.0, scale)
}

func TestController_NoDoubleJumpAfterSideContact(t *testing.T) {
	cfg := config.Default()
	space := physics.NewSpace(physics.Vec2{Y: -cfg.Physics.Gravity}, cfg.Physics.Iterations)
	w := ecs.NewWorld()

	floor := config.BoxConfig{X: 0, Y: -2, Width: 50, Height: 2}
	cfg.Arena.Ground = []config.BoxConfig{
		floor,
		{X: 3, Y: -0.5, Width: 1, Height: 1},
	}
	BuildArena(space, cfg.Arena)
	spec := CharacterSpecFromConfig(cfg.Character)
	spec.Y = floor.Y + floor.Height/2 + spec.Height/2 + 0.05
	id, err := SpawnCharacter(w, space, spec)
	require.NoError(t, err)
	c := w.Character(id)

	ctrl, err := NewController(cfg)
	require.NoError(t, err)
	ctx := &SimContext{World: w, Bodies: space, Contacts: space.Events()}
	step := func(raw RawInput) TickReport {
		r := ctrl.TickWithInput(ctx, raw, testDT)
		space.Step(testDT.Seconds())
		return r
	}

	for i := 0; i < 30; i++ {
		step(RawInput{})
	}
	require.False(t, c.IsAirborne())

	// walk into the side box until a contact start is waiting
	queued := false
	for i := 0; i < 120 && !queued; i++ {
		step(hold(false, true, false))
		queued = space.Events().Len() > 0
	}
	require.True(t, queued, "walking into the box queues a contact")
	require.False(t, c.IsAirborne())

	r := step(hold(false, false, true))
	assert.Equal(t, []entity.EntityID{id}, r.Jumped)
	assert.Empty(t, r.Landed)
	assert.True(t, c.IsAirborne())

	step(RawInput{})
	r = step(hold(false, false, true))
	assert.Empty(t, r.Jumped, "no second jump while airborne")
}
