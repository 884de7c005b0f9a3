package animation

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

// Completer receives the end-of-clip signals for roll and attack
type Completer interface {
	CompleteRoll()
	CompleteAttack()
}

// Config holds clip lengths in seconds
type Config struct {
	RollDuration   float64
	AttackDuration float64
}

// DefaultConfig returns the stock clip lengths
func DefaultConfig() Config {
	return Config{
		RollDuration:   0.9,
		AttackDuration: 0.6,
	}
}

// numSignals must track the entity.Signal constants
const numSignals = int(entity.SignalAttackStart) + 1

type clip struct {
	tween    *gween.Tween
	progress float32
}

// Animator stores animation parameters and plays one-shot clips for triggers.
// When a clip finishes it tells the bound Completer, exactly once per trigger.
type Animator struct {
	config    Config
	completer Completer

	bools  map[entity.Param]bool
	floats map[entity.Param]float64
	clips  [numSignals]*clip
}

// NewAnimator creates an animator with no completer bound
func NewAnimator(cfg Config) *Animator {
	return &Animator{
		config: cfg,
		bools:  make(map[entity.Param]bool),
		floats: make(map[entity.Param]float64),
	}
}

// Bind sets the receiver of clip completions
func (a *Animator) Bind(c Completer) {
	a.completer = c
}

// Trigger starts (or restarts) the clip for sig
func (a *Animator) Trigger(sig entity.Signal) {
	if int(sig) < 0 || int(sig) >= numSignals {
		return
	}
	a.clips[sig] = &clip{
		tween: gween.New(0, 1, float32(a.duration(sig)), ease.Linear),
	}
}

// SetBool sets a bool parameter
func (a *Animator) SetBool(p entity.Param, v bool) {
	a.bools[p] = v
}

// SetFloat sets a float parameter
func (a *Animator) SetFloat(p entity.Param, v float64) {
	a.floats[p] = v
}

// Bool returns a bool parameter
func (a *Animator) Bool(p entity.Param) bool {
	return a.bools[p]
}

// Float returns a float parameter
func (a *Animator) Float(p entity.Param) float64 {
	return a.floats[p]
}

// Playing reports whether the clip for sig is running
func (a *Animator) Playing(sig entity.Signal) bool {
	return int(sig) >= 0 && int(sig) < numSignals && a.clips[sig] != nil
}

// Progress returns how far the clip for sig has played, in [0, 1]
func (a *Animator) Progress(sig entity.Signal) (float64, bool) {
	if !a.Playing(sig) {
		return 0, false
	}
	return float64(a.clips[sig].progress), true
}

// Update advances running clips by dt and delivers completions
func (a *Animator) Update(dt float64) {
	for i := range a.clips {
		c := a.clips[i]
		if c == nil {
			continue
		}

		var done bool
		c.progress, done = c.tween.Update(float32(dt))
		if !done {
			continue
		}

		a.clips[i] = nil
		a.complete(entity.Signal(i))
	}
}

// Reset stops every clip without delivering completions
func (a *Animator) Reset() {
	for i := range a.clips {
		a.clips[i] = nil
	}
}

func (a *Animator) complete(sig entity.Signal) {
	if a.completer == nil {
		return
	}
	switch sig {
	case entity.SignalRollStart:
		a.completer.CompleteRoll()
	case entity.SignalAttackStart:
		a.completer.CompleteAttack()
	}
}

func (a *Animator) duration(sig entity.Signal) float64 {
	switch sig {
	case entity.SignalRollStart:
		return a.config.RollDuration
	case entity.SignalAttackStart:
		return a.config.AttackDuration
	default:
		return 0
	}
}
