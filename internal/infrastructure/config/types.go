package config

import (
	"github.com/younwookim/gladiator/internal/domain/entity"
)

// GameConfig is the root of controller.yaml
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Ticks      TickConfig       `yaml:"ticks"`
	Controller ControllerConfig `yaml:"controller"`
	Camera     CameraConfig     `yaml:"camera"`
	Input      InputConfig      `yaml:"input"`
	Animation  AnimationConfig  `yaml:"animation"`
	Arena      ArenaConfig      `yaml:"arena"`
	Logging    LoggingConfig    `yaml:"logging"`
	Popularity PopularityConfig `yaml:"popularity"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	Scale        int     `yaml:"scale"`
	Framerate    int     `yaml:"framerate"`
	PixelsPerM   float64 `yaml:"pixelsPerMeter"` // debug view zoom
}

// TickConfig sets the fixed physics rate
type TickConfig struct {
	FixedRate     int `yaml:"fixedRate"`     // fixed ticks per second
	MaxFixedSteps int `yaml:"maxFixedSteps"` // per frame, 0 = unlimited
}

// FixedDelta returns the fixed step length in seconds
func (t TickConfig) FixedDelta() float64 {
	return 1.0 / float64(t.FixedRate)
}

type ControllerConfig struct {
	MoveSpeed          float64 `yaml:"moveSpeed"`
	SprintSpeed        float64 `yaml:"sprintSpeed"`
	RotationSmoothTime float64 `yaml:"rotationSmoothTime"`
	SpeedChangeRate    float64 `yaml:"speedChangeRate"`

	JumpHeight  float64 `yaml:"jumpHeight"`
	Gravity     float64 `yaml:"gravity"`
	JumpTimeout float64 `yaml:"jumpTimeout"`
	FallTimeout float64 `yaml:"fallTimeout"`

	GroundedOffset float64  `yaml:"groundedOffset"`
	GroundedRadius float64  `yaml:"groundedRadius"`
	GroundLayers   []string `yaml:"groundLayers"`

	RollDistance float64 `yaml:"rollDistance"`
	RollSpeed    float64 `yaml:"rollSpeed"`
	PlayerLayer  string  `yaml:"playerLayer"`
}

type CameraConfig struct {
	TopClamp      float64 `yaml:"topClamp"`
	BottomClamp   float64 `yaml:"bottomClamp"`
	AngleOverride float64 `yaml:"angleOverride"`
	LockPosition  bool    `yaml:"lockPosition"`
}

type InputConfig struct {
	MouseSensitivity float64 `yaml:"mouseSensitivity"`
	StickSensitivity float64 `yaml:"stickSensitivity"`
	StickDeadzone    float64 `yaml:"stickDeadzone"`
}

// AnimationConfig holds clip lengths in seconds
type AnimationConfig struct {
	RollDuration   float64 `yaml:"rollDuration"`
	AttackDuration float64 `yaml:"attackDuration"`
}

type ArenaConfig struct {
	Map string `yaml:"map"` // TMX path relative to the config root
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PopularityConfig struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// Default returns the stock configuration. Loaded files are decoded on top of it,
// so any key a file omits keeps its default.
func Default() *GameConfig {
	cc := entity.DefaultControllerConfig()
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  480,
			ScreenHeight: 360,
			Scale:        2,
			Framerate:    60,
			PixelsPerM:   24,
		},
		Ticks: TickConfig{FixedRate: 50, MaxFixedSteps: 5},
		Controller: ControllerConfig{
			MoveSpeed:          cc.MoveSpeed,
			SprintSpeed:        cc.SprintSpeed,
			RotationSmoothTime: cc.RotationSmoothTime,
			SpeedChangeRate:    cc.SpeedChangeRate,
			JumpHeight:         cc.JumpHeight,
			Gravity:            cc.Gravity,
			JumpTimeout:        cc.JumpTimeout,
			FallTimeout:        cc.FallTimeout,
			GroundedOffset:     cc.GroundedOffset,
			GroundedRadius:     cc.GroundedRadius,
			GroundLayers:       []string{"default", "ground"},
			RollDistance:       cc.RollDistance,
			RollSpeed:          cc.RollSpeed,
			PlayerLayer:        cc.PlayerLayer.String(),
		},
		Camera: CameraConfig{TopClamp: 70, BottomClamp: -30},
		Input: InputConfig{
			MouseSensitivity: 0.15,
			StickSensitivity: 180,
			StickDeadzone:    0.15,
		},
		Animation:  AnimationConfig{RollDuration: 0.9, AttackDuration: 0.6},
		Arena:      ArenaConfig{Map: "arena.tmx"},
		Logging:    LoggingConfig{Level: "info", Format: "console"},
		Popularity: PopularityConfig{Initial: 0, Max: 100},
	}
}
