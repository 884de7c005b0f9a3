package replay

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

// Version is written into new recordings
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	DT float64 `json:"dt"`           // Frame time (s)
	MX float64 `json:"mx,omitempty"` // Move X
	MY float64 `json:"my,omitempty"` // Move Y
	LX float64 `json:"lx,omitempty"` // Look X
	LY float64 `json:"ly,omitempty"` // Look Y
	S  bool    `json:"s,omitempty"`  // Sprint
	J  bool    `json:"j,omitempty"`  // Jump
	R  bool    `json:"r,omitempty"`  // Roll
	A  bool    `json:"a,omitempty"`  // Attack
	AN bool    `json:"an,omitempty"` // AnalogMovement
	ML bool    `json:"ml,omitempty"` // MouseLook
}

// Snapshot is the character state at the end of a recording, used to verify playback
type Snapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float64 `json:"yaw"`
	State string  `json:"state"`
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Arena     string       `json:"arena"`
	FixedRate int          `json:"fixedRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Final     *Snapshot    `json:"final,omitempty"`
}

// FromInput converts an input snapshot to a frame record
func FromInput(frame int, dt float64, in entity.Input) FrameInput {
	return FrameInput{
		F:  frame,
		DT: dt,
		MX: in.Move.X(),
		MY: in.Move.Y(),
		LX: in.Look.X(),
		LY: in.Look.Y(),
		S:  in.Sprint,
		J:  in.Jump,
		R:  in.Roll,
		A:  in.Attack,
		AN: in.AnalogMovement,
		ML: in.MouseLook,
	}
}

// Input converts the frame record back to an input snapshot
func (fi FrameInput) Input() entity.Input {
	return entity.Input{
		Move:           mgl64.Vec2{fi.MX, fi.MY},
		Look:           mgl64.Vec2{fi.LX, fi.LY},
		Sprint:         fi.S,
		Jump:           fi.J,
		Roll:           fi.R,
		Attack:         fi.A,
		AnalogMovement: fi.AN,
		MouseLook:      fi.ML,
	}
}

// SnapshotOf captures the character and action state
func SnapshotOf(c *entity.Character, state entity.ActionState) Snapshot {
	return Snapshot{
		X:     c.Position.X(),
		Y:     c.Position.Y(),
		Z:     c.Position.Z(),
		Yaw:   c.Yaw,
		State: state.String(),
	}
}

// Matches reports whether two snapshots agree within tol
func (s Snapshot) Matches(o Snapshot, tol float64) bool {
	return s.State == o.State &&
		math.Abs(s.X-o.X) <= tol &&
		math.Abs(s.Y-o.Y) <= tol &&
		math.Abs(s.Z-o.Z) <= tol &&
		math.Abs(s.Yaw-o.Yaw) <= tol
}
