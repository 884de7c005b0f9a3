package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopularity(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		limit   int
		deltas  []int
		want    int
	}{
		{"starts at initial", 10, 0, nil, 10},
		{"adds", 0, 0, []int{5, 3}, 8},
		{"never negative", 2, 0, []int{-10}, 0},
		{"capped", 90, 100, []int{25}, 100},
		{"initial clamped", 150, 100, nil, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPopularity(tt.initial, tt.limit)
			for _, d := range tt.deltas {
				p.Add(d)
			}
			assert.Equal(t, tt.want, p.Value())
		})
	}
}

func TestPopularity_SharedByReference(t *testing.T) {
	p := NewPopularity(0, 0)
	holder := struct{ pop *Popularity }{p}

	holder.pop.Add(7)

	assert.Equal(t, 7, p.Value())
}
