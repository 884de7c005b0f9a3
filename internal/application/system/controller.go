package system

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/gladiator/internal/domain/entity"
)

// ErrMissingDependency is returned when a required collaborator is nil
var ErrMissingDependency = errors.New("missing controller dependency")

// Dependencies are the collaborators a Controller needs.
// Mover and Logger are optional.
type Dependencies struct {
	Spatial   Spatial
	Animator  Animator
	Character *entity.Character
	Mover     Mover
	Logger    *slog.Logger
}

// StateListener is notified when the action state changes
type StateListener func(prev, next entity.ActionState)

// Frame is the outcome of one variable tick
type Frame struct {
	Displacement  mgl64.Vec3
	State         entity.ActionState
	JumpStarted   bool
	RollStarted   bool
	AttackStarted bool
}

// Controller runs the locomotion and action state machine for one character
type Controller struct {
	config    entity.ControllerConfig
	character *entity.Character
	animator  Animator
	mover     Mover
	logger    *slog.Logger

	ground     *GroundSensor
	locomotion *LocomotionSystem
	roll       *RollSystem
	attack     *AttackSystem

	motion    entity.MotionState
	state     entity.ActionState
	listeners []StateListener
}

// NewController validates cfg and deps and creates a controller
func NewController(cfg entity.ControllerConfig, deps Dependencies) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch {
	case deps.Spatial == nil:
		return nil, fmt.Errorf("%w: spatial", ErrMissingDependency)
	case deps.Animator == nil:
		return nil, fmt.Errorf("%w: animator", ErrMissingDependency)
	case deps.Character == nil:
		return nil, fmt.Errorf("%w: character", ErrMissingDependency)
	}

	c := &Controller{
		config:    cfg,
		character: deps.Character,
		animator:  deps.Animator,
		mover:     deps.Mover,
		logger:    deps.Logger,
		state:     entity.StateIdle,
	}
	if c.mover == nil {
		c.mover = directMover{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	c.motion = entity.NewMotionState(&c.config)
	c.ground = NewGroundSensor(&c.config, deps.Spatial)
	c.locomotion = NewLocomotionSystem(&c.config, deps.Animator)
	c.roll = NewRollSystem(&c.config, deps.Spatial, deps.Animator)
	c.attack = NewAttackSystem(deps.Animator)
	return c, nil
}

// Update runs one variable tick. Consumed requests in input are cleared.
func (c *Controller) Update(dt float64, input *entity.Input, cameraYaw float64) Frame {
	if input == nil {
		input = &entity.Input{}
	}

	// Ground check
	c.motion.Grounded = c.ground.Probe(c.character.Position)
	c.animator.SetBool(entity.ParamGrounded, c.motion.Grounded)

	// Locomotion
	locked := c.roll.Active() || c.attack.Attacking()
	displacement, jumped := c.locomotion.Step(dt, input, cameraYaw, c.character, &c.motion, locked)
	c.mover.Move(c.character, displacement)
	if jumped {
		c.logger.Debug("jump started", "velocity", c.motion.VerticalVelocity)
	}

	// Actions
	rolled := c.roll.TryStart(dt, c.motion.Grounded, c.attack.Attacking(), input, cameraYaw, c.character, &c.motion) != nil
	if rolled {
		c.logger.Debug("roll started", "target", c.roll.Session().Target)
	}
	attacked := c.attack.TryStart(c.roll.Active(), c.motion.Grounded, input)
	if attacked {
		c.logger.Debug("attack started")
	}

	next := entity.Classify(c.motion.Grounded, c.attack.Attacking(), c.roll.Active(), input.Sprint, input.HasMove())
	c.setState(next)

	return Frame{
		Displacement:  displacement,
		State:         c.state,
		JumpStarted:   jumped,
		RollStarted:   rolled,
		AttackStarted: attacked,
	}
}

// FixedUpdate runs one physics tick
func (c *Controller) FixedUpdate() {
	c.roll.FixedTick(c.character)
}

// CompleteRoll ends the current roll. Called by the animation layer.
func (c *Controller) CompleteRoll() {
	if s := c.roll.Session(); s != nil {
		c.logger.Debug("roll completed", "ticks", s.Ticks, "blocked", s.Blocked)
	}
	c.roll.Cancel()
}

// CompleteAttack ends the current attack. Called by the animation layer.
func (c *Controller) CompleteAttack() {
	if c.attack.Attacking() {
		c.logger.Debug("attack completed")
	}
	c.attack.Complete()
}

// AddStateListener registers a callback for action state changes
func (c *Controller) AddStateListener(l StateListener) {
	c.listeners = append(c.listeners, l)
}

func (c *Controller) setState(next entity.ActionState) {
	prev := c.state
	if prev == next {
		return
	}
	c.state = next
	c.logger.Debug("action state changed", "from", prev.String(), "to", next.String())
	for _, l := range c.listeners {
		l(prev, next)
	}
}

// State returns the action state computed by the last Update
func (c *Controller) State() entity.ActionState {
	return c.state
}

// Motion returns a copy of the motion state
func (c *Controller) Motion() entity.MotionState {
	return c.motion
}

// Rolling reports whether a roll is in progress
func (c *Controller) Rolling() bool {
	return c.roll.Active()
}

// RollSession returns the current roll, or nil
func (c *Controller) RollSession() *RollSession {
	return c.roll.Session()
}

// Attacking reports whether an attack is in progress
func (c *Controller) Attacking() bool {
	return c.attack.Attacking()
}

// Character returns the controlled character
func (c *Controller) Character() *entity.Character {
	return c.character
}

// Config returns a copy of the controller config
func (c *Controller) Config() entity.ControllerConfig {
	return c.config
}

// ProbeCenter returns where the ground probe sphere is centered this tick
func (c *Controller) ProbeCenter() mgl64.Vec3 {
	return c.ground.ProbeCenter(c.character.Position)
}
