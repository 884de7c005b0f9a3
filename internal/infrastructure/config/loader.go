package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

// ControllerFile is the main config file name
const ControllerFile = "controller.yaml"

// ErrInvalid is returned when a loaded config fails validation
var ErrInvalid = errors.New("invalid config")

// Loader loads game configuration from YAML files using fs.FS interface
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

// FS returns the filesystem the loader reads from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadAll loads controller.yaml over the defaults and validates it
func (l *Loader) LoadAll() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, ControllerFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ControllerFile, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ControllerFile, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parts of the config the controller does not check itself
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: display size must be positive", ErrInvalid)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive", ErrInvalid)
	case c.Ticks.FixedRate <= 0:
		return fmt.Errorf("%w: fixedRate must be positive", ErrInvalid)
	case c.Ticks.MaxFixedSteps < 0:
		return fmt.Errorf("%w: maxFixedSteps must not be negative", ErrInvalid)
	case c.Camera.BottomClamp > c.Camera.TopClamp:
		return fmt.Errorf("%w: camera bottomClamp above topClamp", ErrInvalid)
	case c.Animation.RollDuration < 0 || c.Animation.AttackDuration < 0:
		return fmt.Errorf("%w: clip durations must not be negative", ErrInvalid)
	case c.Popularity.Max < 0:
		return fmt.Errorf("%w: popularity max must not be negative", ErrInvalid)
	}

	cc, err := c.ToControllerConfig()
	if err != nil {
		return err
	}
	if err := cc.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ToControllerConfig maps the controller section to the domain config
func (c *GameConfig) ToControllerConfig() (entity.ControllerConfig, error) {
	src := c.Controller

	var ground entity.LayerMask
	for _, name := range src.GroundLayers {
		layer, ok := entity.ParseLayer(name)
		if !ok {
			return entity.ControllerConfig{}, fmt.Errorf("%w: unknown ground layer %q", ErrInvalid, name)
		}
		ground |= layer.Mask()
	}
	player, ok := entity.ParseLayer(src.PlayerLayer)
	if !ok {
		return entity.ControllerConfig{}, fmt.Errorf("%w: unknown player layer %q", ErrInvalid, src.PlayerLayer)
	}

	return entity.ControllerConfig{
		MoveSpeed:          src.MoveSpeed,
		SprintSpeed:        src.SprintSpeed,
		RotationSmoothTime: src.RotationSmoothTime,
		SpeedChangeRate:    src.SpeedChangeRate,
		JumpHeight:         src.JumpHeight,
		Gravity:            src.Gravity,
		JumpTimeout:        src.JumpTimeout,
		FallTimeout:        src.FallTimeout,
		GroundedOffset:     src.GroundedOffset,
		GroundedRadius:     src.GroundedRadius,
		GroundLayers:       ground,
		RollDistance:       src.RollDistance,
		RollSpeed:          src.RollSpeed,
		PlayerLayer:        player,
	}, nil
}
