// Package game implements the Skygate simulation core: the flyer physics,
// the gate lifecycle, collision and scoring evaluation, and the session
// state machine that ties them together. The package is pure: timestamps,
// geometry, randomness, and persistence are all injected, so sessions are
// deterministic under test.
package game

import (
	"github.com/nlipatov/skygate/internal/core"
)

// Physics constants. Tuning values are calibrated at a 60 Hz reference
// rate; ReferenceRate rescales them so motion looks the same at any
// actual frame timing.
const (
	ReferenceRate = 60.0
	// MaxStep bounds a single integration step. Long gaps between frames
	// (a suspended terminal, a stalled tick) are clamped rather than
	// integrated, trading accuracy for stability.
	MaxStep = 0.05
)

// Flyer is the player-controlled entity. Its horizontal position is
// fixed for the whole session; only the vertical axis is simulated.
type Flyer struct {
	X       float64 // Fixed horizontal position
	Y       float64 // Vertical position (top of bounding box)
	Vel     float64 // Vertical velocity, positive = down
	Gravity float64
	Impulse float64
}

// Integrate advances the flyer by dt seconds of gravity. The caller is
// responsible for clamping elapsed frame time to MaxStep before calling.
// No bounds are enforced here; boundary violations are detected by
// Evaluate.
func (f *Flyer) Integrate(dt float64) {
	f.Vel += f.Gravity * ReferenceRate * dt
	f.Y += f.Vel * ReferenceRate * dt
}

// Flap sets the vertical velocity to the impulse constant, overriding
// whatever the flyer was doing. A flap is an instantaneous velocity
// override, not an added force.
func (f *Flyer) Flap() {
	f.Vel = f.Impulse
}

// Bounds returns the flyer's bounding box for the given size.
func (f *Flyer) Bounds(w, h float64) core.RectF {
	return core.NewRectF(f.X, f.Y, w, h)
}
