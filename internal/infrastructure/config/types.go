package config

import "github.com/younwookim/jumper/internal/domain/entity"

// Edge modes for input capture
const (
	EdgeModeDetect = "edge"   // pressed/released computed against the previous tick
	EdgeModeLegacy = "legacy" // pressed and released mirror the held state
)

// GameConfig is the root config for game.yaml (or .toml / .json)
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display" toml:"display" json:"display"`
	Physics   PhysicsSettings `yaml:"physics" toml:"physics" json:"physics"`
	Input     InputConfig     `yaml:"input" toml:"input" json:"input"`
	Dash      DashConfig      `yaml:"dash" toml:"dash" json:"dash"`
	Character CharacterConfig `yaml:"character" toml:"character" json:"character"`
	Arena     ArenaConfig     `yaml:"arena" toml:"arena" json:"arena"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screen_width" toml:"screen_width" json:"screen_width"`
	ScreenHeight int     `yaml:"screen_height" toml:"screen_height" json:"screen_height"`
	Scale        float64 `yaml:"scale" toml:"scale" json:"scale"` // pixels per world unit
	TPS          int     `yaml:"tps" toml:"tps" json:"tps"`
	Title        string  `yaml:"title" toml:"title" json:"title"`
}

type PhysicsSettings struct {
	Gravity    float64 `yaml:"gravity" toml:"gravity" json:"gravity"` // downward, world units/s²
	Iterations int     `yaml:"iterations" toml:"iterations" json:"iterations"`
	// GravityScaling switches the body's gravity scale between the rising and
	// falling movement values during a jump
	GravityScaling bool `yaml:"gravity_scaling" toml:"gravity_scaling" json:"gravity_scaling"`
}

type InputConfig struct {
	EdgeMode string         `yaml:"edge_mode" toml:"edge_mode" json:"edge_mode"`
	Bindings BindingsConfig `yaml:"bindings" toml:"bindings" json:"bindings"`
}

// BindingsConfig lists ebiten key names per logical action
type BindingsConfig struct {
	MoveLeft  []string `yaml:"move_left" toml:"move_left" json:"move_left"`
	MoveRight []string `yaml:"move_right" toml:"move_right" json:"move_right"`
	Jump      []string `yaml:"jump" toml:"jump" json:"jump"`
}

type DashConfig struct {
	Cooldown float64 `yaml:"cooldown" toml:"cooldown" json:"cooldown"` // seconds
}

type CharacterConfig struct {
	Width    float64        `yaml:"width" toml:"width" json:"width"`
	Height   float64        `yaml:"height" toml:"height" json:"height"`
	Mass     float64        `yaml:"mass" toml:"mass" json:"mass"`
	Friction float64        `yaml:"friction" toml:"friction" json:"friction"`
	Spawn    PositionConfig `yaml:"spawn" toml:"spawn" json:"spawn"`
	Movement MovementConfig `yaml:"movement" toml:"movement" json:"movement"`
}

type PositionConfig struct {
	X float64 `yaml:"x" toml:"x" json:"x"`
	Y float64 `yaml:"y" toml:"y" json:"y"`
}

type MovementConfig struct {
	MaxSpeed               float64 `yaml:"max_speed" toml:"max_speed" json:"max_speed"`
	HorizontalAcceleration float64 `yaml:"horizontal_acceleration" toml:"horizontal_acceleration" json:"horizontal_acceleration"`
	JumpPower              float64 `yaml:"jump_power" toml:"jump_power" json:"jump_power"`
	AirForwardMaxSpeed     float64 `yaml:"air_forward_max_speed" toml:"air_forward_max_speed" json:"air_forward_max_speed"`
	AirBackwardMaxSpeed    float64 `yaml:"air_backward_max_speed" toml:"air_backward_max_speed" json:"air_backward_max_speed"`
	RisingGravityScale     float64 `yaml:"rising_gravity_scale" toml:"rising_gravity_scale" json:"rising_gravity_scale"`
	FallingGravityScale    float64 `yaml:"falling_gravity_scale" toml:"falling_gravity_scale" json:"falling_gravity_scale"`
	CommitJumpDirection    bool    `yaml:"commit_jump_direction" toml:"commit_jump_direction" json:"commit_jump_direction"`
}

// ToEntity converts the config block into the character's movement tunables
func (m MovementConfig) ToEntity() entity.Movement {
	return entity.Movement{
		MaxSpeed:               m.MaxSpeed,
		HorizontalAcceleration: m.HorizontalAcceleration,
		JumpPower:              m.JumpPower,
		AirForwardMaxSpeed:     m.AirForwardMaxSpeed,
		AirBackwardMaxSpeed:    m.AirBackwardMaxSpeed,
		RisingGravityScale:     m.RisingGravityScale,
		FallingGravityScale:    m.FallingGravityScale,
		CommitJumpDirection:    m.CommitJumpDirection,
	}
}

// ArenaConfig lists the static boxes the character can stand on
type ArenaConfig struct {
	Ground []BoxConfig `yaml:"ground" toml:"ground" json:"ground"`
}

// BoxConfig is an axis-aligned box; X, Y is its center
type BoxConfig struct {
	X      float64 `yaml:"x" toml:"x" json:"x"`
	Y      float64 `yaml:"y" toml:"y" json:"y"`
	Width  float64 `yaml:"width" toml:"width" json:"width"`
	Height float64 `yaml:"height" toml:"height" json:"height"`
}

// Default returns the built-in configuration.
// The character is 40x80 pixels at 15 pixels per world unit.
func Default() *GameConfig {
	const scale = 15.0
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  1000,
			ScreenHeight: 1000,
			Scale:        scale,
			TPS:          60,
			Title:        "Jumper",
		},
		Physics: PhysicsSettings{
			Gravity:        9.81,
			Iterations:     10,
			GravityScaling: true,
		},
		Input: InputConfig{
			EdgeMode: EdgeModeDetect,
			Bindings: BindingsConfig{
				MoveLeft:  []string{"A", "ArrowLeft"},
				MoveRight: []string{"D", "ArrowRight"},
				Jump:      []string{"Space"},
			},
		},
		Dash: DashConfig{
			Cooldown: 0.5,
		},
		Character: CharacterConfig{
			Width:  40 / scale,
			Height: 80 / scale,
			Mass:   300,
			Spawn:  PositionConfig{X: 0, Y: 0},
			Movement: MovementConfig{
				MaxSpeed:               20,
				HorizontalAcceleration: 5,
				JumpPower:              10,
				AirForwardMaxSpeed:     15,
				AirBackwardMaxSpeed:    7,
				RisingGravityScale:     1,
				FallingGravityScale:    3,
				CommitJumpDirection:    true,
			},
		},
		Arena: ArenaConfig{
			Ground: []BoxConfig{
				{X: 0, Y: -25, Width: 50, Height: 2.4},
			},
		},
	}
}
