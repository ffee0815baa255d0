package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported config format")

// DefaultFile is the config file loaded when no name is given
const DefaultFile = "game.yaml"

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// Load reads name on top of Default() and validates the result.
// The format is chosen by extension: .yaml/.yml, .toml or .json.
func (l *Loader) Load(name string) (*GameConfig, error) {
	if name == "" {
		name = DefaultFile
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	if err := Decode(name, data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return cfg, nil
}

// Decode unmarshals data into v according to the extension of name
func Decode(name string, data []byte, v any) error {
	var err error
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	case ".toml":
		err = toml.Unmarshal(data, v)
	case ".json":
		err = json.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// IsConfigFile reports whether the loader can decode the file
func IsConfigFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".toml", ".json":
		return true
	}
	return false
}

// Validate checks the values the simulation cannot run without
func (c *GameConfig) Validate() error {
	if c.Display.TPS <= 0 {
		return fmt.Errorf("display.tps must be positive, got %d", c.Display.TPS)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("display.scale must be positive, got %v", c.Display.Scale)
	}
	if c.Character.Width <= 0 || c.Character.Height <= 0 {
		return fmt.Errorf("character size must be positive, got %vx%v", c.Character.Width, c.Character.Height)
	}
	if c.Character.Mass <= 0 {
		return fmt.Errorf("character.mass must be positive, got %v", c.Character.Mass)
	}
	if c.Dash.Cooldown < 0 {
		return fmt.Errorf("dash.cooldown must not be negative, got %v", c.Dash.Cooldown)
	}
	switch c.Input.EdgeMode {
	case EdgeModeDetect, EdgeModeLegacy:
	default:
		return fmt.Errorf("input.edge_mode must be %q or %q, got %q", EdgeModeDetect, EdgeModeLegacy, c.Input.EdgeMode)
	}
	if err := c.Character.Movement.ToEntity().Validate(); err != nil {
		return err
	}
	return nil
}
