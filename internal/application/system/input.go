package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/gladiator/internal/domain/entity"
)

// InputConfig controls how raw device state maps to an input snapshot
type InputConfig struct {
	MouseSensitivity float64 // degrees per pixel
	StickSensitivity float64 // degrees per second at full deflection
	StickDeadzone    float64
}

// DefaultInputConfig returns the stock input tuning
func DefaultInputConfig() InputConfig {
	return InputConfig{
		MouseSensitivity: 0.15,
		StickSensitivity: 180,
		StickDeadzone:    0.15,
	}
}

// InputSystem samples keyboard, mouse and gamepad into entity.Input
type InputSystem struct {
	config InputConfig

	lastMouseX, lastMouseY int
	hasMouse               bool
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg InputConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// DeviceState holds raw device readings for one frame
type DeviceState struct {
	Forward, Back, Left, Right bool
	Sprint                     bool
	JumpPressed                bool
	RollPressed                bool
	AttackPressed              bool
	MouseDX, MouseDY           float64

	// Gamepad
	Gamepad        bool
	StickX, StickY float64 // left stick, +Y forward
	LookX, LookY   float64 // right stick
}

// ReadDevices reads the current device state from ebiten
func (s *InputSystem) ReadDevices() DeviceState {
	mx, my := ebiten.CursorPosition()
	var dx, dy float64
	if s.hasMouse {
		dx = float64(mx - s.lastMouseX)
		dy = float64(my - s.lastMouseY)
	}
	s.lastMouseX, s.lastMouseY, s.hasMouse = mx, my, true

	ds := DeviceState{
		Forward:       ebiten.IsKeyPressed(ebiten.KeyW),
		Back:          ebiten.IsKeyPressed(ebiten.KeyS),
		Left:          ebiten.IsKeyPressed(ebiten.KeyA),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD),
		Sprint:        ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
		JumpPressed:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		RollPressed:   inpututil.IsKeyJustPressed(ebiten.KeyQ),
		AttackPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyJ),
		MouseDX:       dx,
		MouseDY:       dy,
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		ds.Gamepad = true
		ds.StickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ds.StickY = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		ds.LookX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ds.LookY = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		ds.Sprint = ds.Sprint || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftStick)
		ds.JumpPressed = ds.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		ds.RollPressed = ds.RollPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		ds.AttackPressed = ds.AttackPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		break
	}
	return ds
}

// GetInput reads devices and builds this frame's snapshot
func (s *InputSystem) GetInput() entity.Input {
	return s.Build(s.ReadDevices())
}

// Build maps device state to an input snapshot.
// A deflected stick wins over the keyboard and makes movement analog.
func (s *InputSystem) Build(ds DeviceState) entity.Input {
	in := entity.Input{
		Sprint: ds.Sprint,
		Jump:   ds.JumpPressed,
		Roll:   ds.RollPressed,
		Attack: ds.AttackPressed,
	}

	stick := mgl64.Vec2{ds.StickX, ds.StickY}
	if ds.Gamepad && stick.Len() > s.config.StickDeadzone {
		if stick.Len() > 1 {
			stick = stick.Normalize()
		}
		in.Move = stick
		in.AnalogMovement = true
	} else {
		in.Move = keyAxis(ds)
	}

	look := mgl64.Vec2{ds.LookX, ds.LookY}
	if ds.Gamepad && look.Len() > s.config.StickDeadzone {
		in.Look = look.Mul(s.config.StickSensitivity)
	} else {
		in.Look = mgl64.Vec2{ds.MouseDX, ds.MouseDY}.Mul(s.config.MouseSensitivity)
		in.MouseLook = true
	}
	return in
}

// keyAxis returns the normalized WASD direction
func keyAxis(ds DeviceState) mgl64.Vec2 {
	var v mgl64.Vec2
	if ds.Forward {
		v[1]++
	}
	if ds.Back {
		v[1]--
	}
	if ds.Right {
		v[0]++
	}
	if ds.Left {
		v[0]--
	}
	if v.Len() > 0 {
		v = v.Normalize()
	}
	return v
}
