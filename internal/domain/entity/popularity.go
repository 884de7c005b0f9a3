package entity

// Popularity is the crowd's opinion of the gladiator.
// One instance is created by the composition root and handed to whoever updates or shows it.
type Popularity struct {
	value int
	max   int
}

// NewPopularity creates a popularity stat starting at initial, capped at limit (0 = no cap)
func NewPopularity(initial, limit int) *Popularity {
	p := &Popularity{max: limit}
	p.Set(initial)
	return p
}

// Value returns the current popularity
func (p *Popularity) Value() int {
	return p.value
}

// Add changes popularity by delta and returns the new value
func (p *Popularity) Add(delta int) int {
	p.Set(p.value + delta)
	return p.value
}

// Set replaces the value, clamped to [0, max]
func (p *Popularity) Set(v int) {
	if v < 0 {
		v = 0
	}
	if p.max > 0 && v > p.max {
		v = p.max
	}
	p.value = v
}
