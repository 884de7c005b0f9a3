package entity

import "github.com/go-gl/mathgl/mgl64"

// zeroInputSqr matches the tolerance used when comparing a stick vector to zero
const zeroInputSqr = 1e-10

// Input is one tick's input snapshot.
// Move and Look are level values; Jump, Roll and Attack are edge-triggered
// requests that the controller clears once it has consumed them.
type Input struct {
	Move           mgl64.Vec2
	Look           mgl64.Vec2
	Sprint         bool
	Jump           bool
	Roll           bool
	Attack         bool
	AnalogMovement bool
	MouseLook      bool // look deltas come from a mouse and are not scaled by dt
}

// HasMove reports whether there is any movement input
func (in *Input) HasMove() bool {
	return in.Move.Dot(in.Move) >= zeroInputSqr
}

// MoveMagnitude is the stick magnitude for analog input, 1 otherwise
func (in *Input) MoveMagnitude() float64 {
	if in.AnalogMovement {
		return in.Move.Len()
	}
	return 1
}

// MoveDirection returns the normalized move vector on the XZ plane
func (in *Input) MoveDirection() mgl64.Vec3 {
	if !in.HasMove() {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{in.Move.X(), 0, in.Move.Y()}.Normalize()
}

// Merge ORs the edge-triggered requests of next into in and takes its level values.
// Used to carry requests across frames until the controller consumes them.
func (in *Input) Merge(next Input) {
	in.Move = next.Move
	in.Look = next.Look
	in.Sprint = next.Sprint
	in.AnalogMovement = next.AnalogMovement
	in.MouseLook = next.MouseLook
	in.Jump = in.Jump || next.Jump
	in.Roll = in.Roll || next.Roll
	in.Attack = in.Attack || next.Attack
}
