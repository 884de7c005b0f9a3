package entity

// Signal is a discrete animation trigger
type Signal int

const (
	SignalRollStart Signal = iota
	SignalAttackStart
)

// String returns the animator trigger name
func (s Signal) String() string {
	switch s {
	case SignalRollStart:
		return "Roll"
	case SignalAttackStart:
		return "Attack"
	default:
		return "Unknown"
	}
}

// Param is a named animator parameter
type Param int

const (
	ParamGrounded Param = iota
	ParamJump
	ParamFreeFall
	ParamSpeed
	ParamMotionSpeed
)

// String returns the animator parameter name
func (p Param) String() string {
	switch p {
	case ParamGrounded:
		return "Grounded"
	case ParamJump:
		return "Jump"
	case ParamFreeFall:
		return "FreeFall"
	case ParamSpeed:
		return "Speed"
	case ParamMotionSpeed:
		return "MotionSpeed"
	default:
		return "Unknown"
	}
}
