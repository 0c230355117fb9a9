package game

import (
	"math/rand"

	"github.com/nlipatov/skygate/internal/config"
	"github.com/nlipatov/skygate/internal/core"
)

// Gate is one paired top/bottom obstacle at a single horizontal position.
// The gap between the segments is where the flyer must pass.
type Gate struct {
	X         float64 // Left edge, decreases as the gate scrolls
	TopHeight float64 // Height of the top segment; the gap starts here
	GapSize   float64 // Constant per session
	Scored    bool    // Set once when the flyer passes this gate
}

// GapStart returns the y-coordinate where the gap begins.
func (g Gate) GapStart() float64 {
	return g.TopHeight
}

// BottomHeight returns the bottom segment's height for the given field.
func (g Gate) BottomHeight(fieldH, groundH float64) float64 {
	return fieldH - groundH - g.TopHeight - g.GapSize
}

// TopRect returns the collision box of the top segment.
func (g Gate) TopRect(width float64) core.RectF {
	return core.NewRectF(g.X, 0, width, g.TopHeight)
}

// BottomRect returns the collision box of the bottom segment.
func (g Gate) BottomRect(width, fieldH, groundH float64) core.RectF {
	top := g.TopHeight + g.GapSize
	return core.NewRectF(g.X, top, width, fieldH-groundH-top)
}

// GateManager owns the ordered collection of active gates. Gates are
// always appended at the right edge and evicted from the front, so the
// slice stays sorted by descending x in insertion order.
type GateManager struct {
	gates []Gate
	rng   *rand.Rand
	cfg   config.GateConfig
}

// NewGateManager creates a gate manager with a seeded RNG so gate
// geometry is reproducible under test.
func NewGateManager(seed int64, cfg config.GateConfig) *GateManager {
	return &GateManager{
		gates: make([]Gate, 0, 8),
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
	}
}

// Clear removes all active gates. The RNG is left alone so a session
// restart continues the seeded sequence.
func (m *GateManager) Clear() {
	m.gates = m.gates[:0]
}

// Reset clears all gates and reseeds the RNG.
func (m *GateManager) Reset(seed int64) {
	m.Clear()
	m.rng = rand.New(rand.NewSource(seed))
}

// MaybeSpawn creates one gate at the right edge of the field if the
// spawn interval has elapsed since lastSpawn. A negative lastSpawn means
// no gate has spawned yet and one is created immediately regardless of
// now. Returns the updated lastSpawn timestamp and whether a gate was
// created.
//
// The top segment height is drawn uniformly from
// [MinSegment, available-GapSize-MinSegment], which guarantees both
// segments meet the minimum height and the gap fits. Degenerate fields
// where that range is empty are a configuration precondition, not a
// runtime error.
func (m *GateManager) MaybeSpawn(now, lastSpawn float64, field FieldGeometry) (float64, bool) {
	if lastSpawn >= 0 && now-lastSpawn < m.cfg.SpawnInterval {
		return lastSpawn, false
	}

	available := field.Height - field.GroundHeight
	lo := m.cfg.MinSegment
	hi := available - m.cfg.GapSize - m.cfg.MinSegment

	m.gates = append(m.gates, Gate{
		X:         field.Width,
		TopHeight: lo + m.rng.Float64()*(hi-lo),
		GapSize:   m.cfg.GapSize,
	})
	return now, true
}

// Advance shifts every active gate left by speed units per reference
// frame, scaled by dt seconds.
func (m *GateManager) Advance(dt, speed float64) {
	shift := speed * ReferenceRate * dt
	for i := range m.gates {
		m.gates[i].X -= shift
	}
}

// Evict removes gates whose trailing edge has scrolled strictly more
// than margin units past the left boundary. A trailing edge exactly at
// -margin stays. Gates are created right-to-left and never reordered,
// so eviction only ever takes from the front.
func (m *GateManager) Evict(margin float64) int {
	n := 0
	for n < len(m.gates) && m.gates[n].X+m.cfg.Width < -margin {
		n++
	}
	if n > 0 {
		m.gates = append(m.gates[:0], m.gates[n:]...)
	}
	return n
}

// Gates returns the active gates in spawn order. Callers may flag
// elements as scored but must not reorder or resize the slice.
func (m *GateManager) Gates() []Gate {
	return m.gates
}

// Width returns the configured gate width.
func (m *GateManager) Width() float64 {
	return m.cfg.Width
}
