package system

import "github.com/younwookim/gladiator/internal/domain/entity"

// AttackSystem gates the single-shot attack.
// An attack ends only when Complete is called.
type AttackSystem struct {
	animator  Animator
	attacking bool
}

// NewAttackSystem creates a new attack system
func NewAttackSystem(animator Animator) *AttackSystem {
	return &AttackSystem{animator: animator}
}

// Attacking reports whether an attack is in progress
func (s *AttackSystem) Attacking() bool {
	return s.attacking
}

// TryStart consumes the attack request and starts an attack when allowed.
// Requests while rolling, airborne or already attacking are dropped.
func (s *AttackSystem) TryStart(rolling, grounded bool, input *entity.Input) bool {
	requested := input.Attack
	input.Attack = false

	if rolling || !grounded || !requested || s.attacking {
		return false
	}

	s.attacking = true
	s.animator.Trigger(entity.SignalAttackStart)
	return true
}

// Complete ends the attack
func (s *AttackSystem) Complete() {
	s.attacking = false
}
