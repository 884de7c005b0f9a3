// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/gladiator/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	// Optional wall clock for variable frame time
	now   func() time.Time
	last  time.Time
	maxDT float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.frameDT())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// frameDT returns the fixed dt, or the measured time since the last frame
// when a clock is set. Measured time is capped at maxDT.
func (g *Game) frameDT() float64 {
	if g.now == nil {
		return g.dt
	}
	t := g.now()
	if g.last.IsZero() {
		g.last = t
		return g.dt
	}
	dt := t.Sub(g.last).Seconds()
	g.last = t
	if dt < 0 {
		return 0
	}
	if g.maxDT > 0 && dt > g.maxDT {
		return g.maxDT
	}
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetClock makes frame time follow now, capped at maxDT seconds (0 = no cap).
// The first frame uses the fixed dt.
func (g *Game) SetClock(now func() time.Time, maxDT float64) {
	g.now = now
	g.maxDT = maxDT
	g.last = time.Time{}
}

// Shutdown exits the current scene. Call once after the run loop returns.
func (g *Game) Shutdown() {
	g.current.OnExit()
}
