// Package playing provides the movement demo scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/jumper/internal/application/replay"
	"github.com/younwookim/jumper/internal/application/scene"
	"github.com/younwookim/jumper/internal/application/session"
	"github.com/younwookim/jumper/internal/application/state"
	"github.com/younwookim/jumper/internal/application/system"
	"github.com/younwookim/jumper/internal/domain/entity"
	"github.com/younwookim/jumper/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGround   = color.RGBA{80, 80, 100, 255}
	colorGrounded = color.RGBA{100, 200, 100, 255}
	colorRising   = color.RGBA{100, 160, 230, 255}
	colorFalling  = color.RGBA{230, 160, 80, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
)

// Options configures the optional parts of the scene
type Options struct {
	// RecordPath enables input recording; saved on exit and on F5
	RecordPath string
	// Replay plays recorded input instead of reading the keyboard
	Replay *replay.ReplayData
	// Loader and ConfigName are used to reload the config when Reload fires
	Loader     *config.Loader
	ConfigName string
	Reload     <-chan string
	// Keys overrides the keyboard; nil reads ebiten
	Keys  system.KeySource
	Debug bool
}

// Playing is the movement demo scene
type Playing struct {
	session *session.Session
	state   state.GameState
	keys    system.KeySource
	last    system.TickReport
	opts    Options

	screenW int
	screenH int
	scale   float64

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	replayer *replay.Replayer
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	s, err := session.New(cfg)
	if err != nil {
		return nil, err
	}
	s.SetDebug(opts.Debug)

	p := &Playing{
		session:        s,
		state:          state.StatePlaying,
		keys:           opts.Keys,
		opts:           opts,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		scale:          cfg.Display.Scale,
		recordFilename: opts.RecordPath,
	}
	if p.keys == nil {
		p.keys = system.EbitenKeys{}
	}

	if opts.Replay != nil {
		if opts.Replay.EdgeMode != "" && opts.Replay.EdgeMode != s.EdgeMode() {
			log.Printf("Replay was recorded with edge mode %q, playing with %q", opts.Replay.EdgeMode, s.EdgeMode())
		}
		p.replayer = replay.NewReplayer(*opts.Replay)
		log.Printf("Replaying %d frames", p.replayer.TotalFrames())
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(s.EdgeMode(), cfg.Display.TPS)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ time.Duration) (scene.Scene, error) {
	p.handleHotkeys()
	p.checkReload()

	if p.state.Simulating() {
		p.tick()
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = p.state.TogglePause()
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		p.opts.Debug = !p.opts.Debug
		p.session.SetDebug(p.opts.Debug)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := p.restart(); err != nil {
			log.Printf("Failed to restart: %v", err)
		}
	}

	// C: start a dash cooldown so its lifecycle shows in the overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		p.session.StartDashCooldown()
	}
}

// tick samples input (live or replayed), records it and steps the session
func (p *Playing) tick() {
	if p.replayer == nil {
		p.last = p.session.StepKeys(p.keys)
		p.record(p.last.Input)
		return
	}

	raw, ok := p.replayer.GetInput()
	if !ok {
		p.finishReplay()
		return
	}
	p.last = p.session.Step(raw)
	p.record(raw)
}

func (p *Playing) record(raw system.RawInput) {
	if p.recorder != nil {
		p.recorder.RecordFrame(raw)
	}
}

func (p *Playing) finishReplay() {
	p.state = state.StateReplayFinished
	if snap, ok := p.session.Player(); ok {
		log.Printf("Replay finished after %d frames: pos=(%.2f, %.2f) vel=(%.2f, %.2f) %s",
			snap.Frame, snap.Position.X, snap.Position.Y, snap.Velocity.X, snap.Velocity.Y, snap.Flight.Mode)
	}
}

// checkReload applies changed movement tunables without blocking
func (p *Playing) checkReload() {
	if p.opts.Reload == nil || p.opts.Loader == nil {
		return
	}
	select {
	case name, ok := <-p.opts.Reload:
		if !ok {
			p.opts.Reload = nil
			return
		}
		if err := p.reloadConfig(); err != nil {
			log.Printf("Config reload from %s failed: %v", name, err)
		}
	default:
	}
}

func (p *Playing) reloadConfig() error {
	cfg, err := p.opts.Loader.Load(p.opts.ConfigName)
	if err != nil {
		return err
	}
	if err := p.session.ApplyMovement(cfg.Character.Movement.ToEntity()); err != nil {
		return err
	}
	log.Printf("Movement reloaded: max_speed=%v jump_power=%v commit_jump_direction=%v",
		cfg.Character.Movement.MaxSpeed, cfg.Character.Movement.JumpPower, cfg.Character.Movement.CommitJumpDirection)
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() error {
	s, err := session.New(p.session.Config())
	if err != nil {
		return err
	}
	s.SetDebug(p.opts.Debug)
	p.session = s
	p.last = system.TickReport{}
	p.state = state.StatePlaying

	if p.replayer != nil {
		p.replayer.Reset()
	}
	if p.recorder != nil {
		p.saveRecording()
		p.recorder = replay.NewRecorder(s.EdgeMode(), p.session.Config().Display.TPS)
		log.Printf("Recording restarted")
	}
	return nil
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	space := p.session.Space()
	for _, h := range p.session.Ground() {
		if l, b, r, t, ok := space.Bounds(h); ok {
			p.drawBox(screen, l, b, r, t, colorGround)
		}
	}

	p.session.World().Each(func(c *entity.Character) {
		if l, b, r, t, ok := space.Bounds(c.Body); ok {
			p.drawBox(screen, l, b, r, t, characterColor(c.Flight))
		}
	})

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateReplayFinished:
		p.drawOverlay(screen, "REPLAY FINISHED\n\nPress R to play again")
	}
}

// drawBox draws a world-space box; world Y points up, screen Y down
func (p *Playing) drawBox(screen *ebiten.Image, l, b, r, t float64, clr color.Color) {
	x, y := p.toScreen(l, t)
	ebitenutil.DrawRect(screen, x, y, (r-l)*p.scale, (t-b)*p.scale, clr)
}

func (p *Playing) toScreen(wx, wy float64) (float64, float64) {
	return float64(p.screenW)/2 + wx*p.scale, float64(p.screenH)/2 - wy*p.scale
}

func characterColor(f entity.Flight) color.Color {
	switch {
	case !f.IsAirborne():
		return colorGrounded
	case f.ReachedJumpApex:
		return colorFalling
	default:
		return colorRising
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, "A/D or Arrows: Move | Space: Jump | C: Dash cooldown | R: Restart | F1: Debug | ESC: Pause")
	if !p.opts.Debug {
		return
	}
	ebitenutil.DebugPrintAt(screen, p.debugText(), 10, 20)
}

func (p *Playing) debugText() string {
	snap, ok := p.session.Player()
	if !ok {
		return "no player"
	}
	text := fmt.Sprintf("frame %d  edge=%s  airborne: %d/%d\nflight: %s  apex: %v  takeoff: %s\nfacing: %s  dash ready: %v\npos: (%.2f, %.2f)  vel: (%.2f, %.2f)",
		snap.Frame, p.session.EdgeMode(), p.session.World().CountAirborne(), p.session.World().Len(),
		snap.Flight.Mode, snap.Flight.ReachedJumpApex, snap.Flight.Takeoff,
		snap.Direction, snap.DashReady,
		snap.Position.X, snap.Position.Y, snap.Velocity.X, snap.Velocity.Y)
	if p.replayer != nil {
		text += fmt.Sprintf("\nreplay: %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	if p.recorder != nil && p.recorder.IsRecording() {
		text += fmt.Sprintf("\nrecording: %d frames", p.recorder.FrameCount())
	}
	return text
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// State returns the scene's run state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the running simulation
func (p *Playing) Session() *session.Session {
	return p.session
}

// LastReport returns the report of the most recent tick
func (p *Playing) LastReport() system.TickReport {
	return p.last
}
