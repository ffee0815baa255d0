package playing

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/jumper/internal/application/replay"
	"github.com/younwookim/jumper/internal/application/scene"
	"github.com/younwookim/jumper/internal/application/state"
	"github.com/younwookim/jumper/internal/application/system"
	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/infrastructure/config"
)

// keySet is a KeySource holding exactly the listed keys
type keySet map[ebiten.Key]bool

func (k keySet) IsKeyPressed(key ebiten.Key) bool {
	return k[key]
}

// recordInputs records inputs through a Recorder and returns the result
func recordInputs(edgeMode string, inputs ...system.RawInput) replay.ReplayData {
	rec := replay.NewRecorder(edgeMode, 60)
	for _, in := range inputs {
		rec.RecordFrame(in)
	}
	return rec.Data()
}

// createTestConfig returns the default config with the player resting on the ground
func createTestConfig() *config.GameConfig {
	cfg := config.Default()
	ground := cfg.Arena.Ground[0]
	cfg.Character.Spawn.Y = ground.Y + ground.Height/2 + cfg.Character.Height/2 + 0.05
	return cfg
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	p, err := New(createTestConfig(), opts)
	require.NoError(t, err)
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNew(t *testing.T) {
	t.Run("starts playing with live keys", func(t *testing.T) {
		p := createTestPlaying(t, Options{})
		assert.Equal(t, state.StatePlaying, p.State())
		assert.Equal(t, system.EbitenKeys{}, p.keys)
		assert.Nil(t, p.recorder)
		assert.Nil(t, p.replayer)
	})

	t.Run("invalid config fails", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Display.TPS = 0
		_, err := New(cfg, Options{})
		assert.Error(t, err)
	})

	t.Run("layout matches display", func(t *testing.T) {
		p := createTestPlaying(t, Options{})
		w, h := p.Layout(1, 1)
		assert.Equal(t, 1000, w)
		assert.Equal(t, 1000, h)
	})
}

func TestPlaying_TickWithKeys(t *testing.T) {
	keys := keySet{}
	p := createTestPlaying(t, Options{Keys: keys})

	keys[ebiten.KeySpace] = true
	p.tick()
	assert.Len(t, p.LastReport().Jumped, 1)
	assert.True(t, p.Session().World().Player().IsAirborne())

	keys[ebiten.KeySpace] = false
	keys[ebiten.KeyD] = true
	p.tick()
	assert.Equal(t, system.RawInput{Right: true}, p.LastReport().Input)
	assert.Equal(t, 2, p.Session().Frame())
}

func TestPlaying_Recording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	keys := keySet{ebiten.KeyArrowLeft: true}
	p := createTestPlaying(t, Options{Keys: keys, RecordPath: path})

	for i := 0; i < 5; i++ {
		p.tick()
	}
	p.OnExit()
	p.tick()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	require.Len(t, data.Frames, 5)
	assert.True(t, data.Frames[4].L)
	assert.Equal(t, config.EdgeModeDetect, data.EdgeMode)
}

func TestPlaying_Replay(t *testing.T) {
	data := recordInputs(config.EdgeModeDetect,
		system.RawInput{Jump: true},
		system.RawInput{Right: true},
		system.RawInput{Right: true},
	)
	p := createTestPlaying(t, Options{Replay: &data, Keys: keySet{ebiten.KeyA: true}})

	p.tick()
	assert.Len(t, p.LastReport().Jumped, 1, "replayed input wins over keys")
	p.tick()
	p.tick()
	assert.Equal(t, state.StatePlaying, p.State())

	p.tick()
	assert.Equal(t, state.StateReplayFinished, p.State())
	assert.Equal(t, 3, p.Session().Frame())

	require.NoError(t, p.restart())
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 0, p.replayer.CurrentFrame())
	assert.Equal(t, 0, p.Session().Frame())
}

func TestPlaying_ReloadConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("character:\n  movement:\n    max_speed: 8\n    commit_jump_direction: false\n")},
		"bad.yaml":  {Data: []byte("character:\n  movement:\n    max_speed: -8\n")},
	}
	reload := make(chan string, 1)
	p := createTestPlaying(t, Options{
		Loader:     config.NewFSLoader(fsys, "mem"),
		ConfigName: "game.yaml",
		Reload:     reload,
	})

	reload <- "game.yaml"
	p.checkReload()

	m := p.Session().World().Player().Movement
	assert.Equal(t, 8.0, m.MaxSpeed)
	assert.False(t, m.CommitJumpDirection)

	p.opts.ConfigName = "bad.yaml"
	assert.ErrorIs(t, p.reloadConfig(), entity.ErrInvalidMovement)
	assert.Equal(t, 8.0, p.Session().World().Player().Movement.MaxSpeed)

	close(reload)
	p.checkReload()
	assert.Nil(t, p.opts.Reload, "closed channel stops reloads")
}

func TestPlaying_DebugText(t *testing.T) {
	p := createTestPlaying(t, Options{Debug: true, RecordPath: filepath.Join(t.TempDir(), "r.json")})
	p.tick()

	text := p.debugText()
	assert.Contains(t, text, "frame 1")
	assert.Contains(t, text, "flight: Grounded")
	assert.Contains(t, text, "recording: 1 frames")
	assert.Contains(t, text, "airborne: 0/1")

	p.OnExit()
	assert.NotContains(t, p.debugText(), "recording:", "recording stops on exit")
}

func TestCharacterColor(t *testing.T) {
	assert.Equal(t, colorGrounded, characterColor(entity.Grounded()))
	assert.Equal(t, colorRising, characterColor(entity.TakeOff(entity.Left)))

	falling := entity.TakeOff(entity.Left)
	falling.ReachedJumpApex = true
	assert.Equal(t, colorFalling, characterColor(falling))
}

func TestPlaying_ToScreen(t *testing.T) {
	p := createTestPlaying(t, Options{})

	x, y := p.toScreen(0, 0)
	assert.Equal(t, 500.0, x)
	assert.Equal(t, 500.0, y)

	x, y = p.toScreen(2, 1)
	assert.Equal(t, 530.0, x)
	assert.Equal(t, 485.0, y, "world up is screen up")
}
