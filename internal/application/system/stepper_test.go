package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepper_Advance(t *testing.T) {
	tests := []struct {
		name     string
		maxSteps int
		frames   []float64
		want     int
	}{
		{"exact step", 0, []float64{0.02}, 1},
		{"partial frame", 0, []float64{0.01}, 0},
		{"two and a half", 0, []float64{0.05}, 2},
		{"accumulates", 0, []float64{0.01, 0.01, 0.01}, 1},
		{"capped", 3, []float64{1.0}, 3},
		{"negative frame", 0, []float64{-0.5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFixedStepper(0.02, tt.maxSteps)
			total := 0
			for _, dt := range tt.frames {
				total += s.Advance(dt)
			}
			assert.Equal(t, tt.want, total)
			assert.GreaterOrEqual(t, s.Alpha(), 0.0)
			assert.Less(t, s.Alpha(), 1.0)
		})
	}
}

func TestFixedStepper_AlphaAndReset(t *testing.T) {
	s := NewFixedStepper(0.02, 0)
	assert.Equal(t, 0.02, s.Delta())

	s.Advance(0.05)
	assert.InDelta(t, 0.5, s.Alpha(), 1e-6)

	s.Reset()
	assert.Equal(t, 0.0, s.Alpha())
	assert.Equal(t, 0, s.Advance(0.01))
}

func TestFixedStepper_CapDropsBacklog(t *testing.T) {
	s := NewFixedStepper(0.02, 2)
	assert.Equal(t, 2, s.Advance(0.5))
	assert.Equal(t, 0, s.Advance(0), "backlog beyond the cap is not replayed")
}
