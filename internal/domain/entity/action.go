package entity

// ActionState is the exclusive action the character shows for a tick
type ActionState int

const (
	StateIdle ActionState = iota
	StateWalk
	StateSprint
	StateAir
	StateRoll
	StateAttack
)

// String returns the string representation of the action state
func (s ActionState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWalk:
		return "Walk"
	case StateSprint:
		return "Sprint"
	case StateAir:
		return "Air"
	case StateRoll:
		return "Roll"
	case StateAttack:
		return "Attack"
	default:
		return "Unknown"
	}
}

// Classify picks the action state from this tick's flags.
// Precedence: Air, Attack, Roll, Sprint, Walk, Idle.
func Classify(grounded, attacking, rolling, sprint, hasMove bool) ActionState {
	switch {
	case !grounded:
		return StateAir
	case attacking:
		return StateAttack
	case rolling:
		return StateRoll
	case sprint && hasMove:
		return StateSprint
	case hasMove:
		return StateWalk
	default:
		return StateIdle
	}
}

// Locked reports whether the state suppresses locomotion input
func (s ActionState) Locked() bool {
	return s == StateRoll || s == StateAttack
}
