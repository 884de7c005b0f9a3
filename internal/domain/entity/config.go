package entity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a ControllerConfig fails validation
var ErrInvalidConfig = errors.New("invalid controller config")

// ControllerConfig holds the tunables of the character controller.
// It is set at construction and never mutated afterwards.
type ControllerConfig struct {
	MoveSpeed          float64 // m/s
	SprintSpeed        float64 // m/s
	RotationSmoothTime float64 // seconds
	SpeedChangeRate    float64

	JumpHeight  float64
	Gravity     float64 // negative
	JumpTimeout float64 // seconds before another jump is allowed
	FallTimeout float64 // seconds airborne before free-fall

	GroundedOffset float64
	GroundedRadius float64
	GroundLayers   LayerMask

	RollDistance float64
	RollSpeed    float64 // lerp factor per fixed tick
	PlayerLayer  Layer
}

// DefaultControllerConfig returns the stock tuning
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		MoveSpeed:          2.0,
		SprintSpeed:        5.335,
		RotationSmoothTime: 0.12,
		SpeedChangeRate:    10.0,
		JumpHeight:         1.2,
		Gravity:            -15.0,
		JumpTimeout:        0.5,
		FallTimeout:        0.15,
		GroundedOffset:     -0.14,
		GroundedRadius:     0.28,
		GroundLayers:       MaskOf(LayerDefault, LayerGround),
		RollDistance:       3.0,
		RollSpeed:          0.1,
		PlayerLayer:        LayerPlayer,
	}
}

// Validate checks that the tunables describe a usable controller
func (c *ControllerConfig) Validate() error {
	switch {
	case c.MoveSpeed <= 0:
		return fmt.Errorf("%w: moveSpeed must be positive, got %v", ErrInvalidConfig, c.MoveSpeed)
	case c.SprintSpeed <= 0:
		return fmt.Errorf("%w: sprintSpeed must be positive, got %v", ErrInvalidConfig, c.SprintSpeed)
	case c.RotationSmoothTime < 0:
		return fmt.Errorf("%w: rotationSmoothTime must not be negative, got %v", ErrInvalidConfig, c.RotationSmoothTime)
	case c.SpeedChangeRate <= 0:
		return fmt.Errorf("%w: speedChangeRate must be positive, got %v", ErrInvalidConfig, c.SpeedChangeRate)
	case c.JumpHeight < 0:
		return fmt.Errorf("%w: jumpHeight must not be negative, got %v", ErrInvalidConfig, c.JumpHeight)
	case c.Gravity >= 0:
		return fmt.Errorf("%w: gravity must be negative, got %v", ErrInvalidConfig, c.Gravity)
	case c.JumpTimeout < 0 || c.FallTimeout < 0:
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidConfig)
	case c.GroundedRadius <= 0:
		return fmt.Errorf("%w: groundedRadius must be positive, got %v", ErrInvalidConfig, c.GroundedRadius)
	case c.GroundLayers == 0:
		return fmt.Errorf("%w: groundLayers is empty", ErrInvalidConfig)
	case c.RollDistance < 0:
		return fmt.Errorf("%w: rollDistance must not be negative, got %v", ErrInvalidConfig, c.RollDistance)
	case c.RollSpeed <= 0 || c.RollSpeed > 1:
		return fmt.Errorf("%w: rollSpeed must be in (0, 1], got %v", ErrInvalidConfig, c.RollSpeed)
	}
	return nil
}

// JumpVelocity is the launch speed that reaches JumpHeight under Gravity
func (c *ControllerConfig) JumpVelocity() float64 {
	return math.Sqrt(c.JumpHeight * -2 * c.Gravity)
}
