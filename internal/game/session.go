package game

import (
	"github.com/nlipatov/skygate/internal/config"
)

// State is the session state machine's current state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// FieldGeometry describes the play field in field units. The platform
// re-derives it every frame, so the field may resize between frames.
type FieldGeometry struct {
	Width        float64
	Height       float64
	GroundHeight float64
	FlyerWidth   float64
	FlyerHeight  float64
}

// GeometryProvider supplies the current field geometry on demand.
type GeometryProvider interface {
	FieldGeometry() FieldGeometry
}

// ScoreKeeper is the persistence boundary for the high score.
// LoadHighScore returns 0 for absent or invalid values. SaveHighScore is
// best-effort and must not stall the frame; it is only called when a new
// high score is set.
type ScoreKeeper interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// Session is one playthrough from reset to game over. It exclusively
// owns the flyer and the gate collection, and is only ever touched from
// the driver's single update path. Timestamps are monotonic seconds
// supplied by the driver; the session never reads a wall clock.
type Session struct {
	state     State
	flyer     Flyer
	gates     *GateManager
	score     int
	highScore int
	lastSpawn float64 // Negative means no gate has spawned yet
	lastFrame float64

	geo    GeometryProvider
	scores ScoreKeeper
	cfg    config.Config
}

// NewSession creates a session in the Start state. scores may be nil,
// in which case the high score starts at 0 and is never persisted.
func NewSession(geo GeometryProvider, scores ScoreKeeper, cfg config.Config, seed int64) *Session {
	s := &Session{
		state:  StateStart,
		gates:  NewGateManager(seed, cfg.Gates),
		geo:    geo,
		scores: scores,
		cfg:    cfg,
	}
	if scores != nil {
		if hs := scores.LoadHighScore(); hs > 0 {
			s.highScore = hs
		}
	}
	return s
}

// Activate consumes the single abstract input signal. In Start or
// GameOver it begins a fresh playthrough; while Playing it flaps. The
// activating input doubles as the first flap.
func (s *Session) Activate(now float64) {
	switch s.state {
	case StateStart, StateGameOver:
		s.reset(now)
		s.state = StatePlaying
		s.flyer.Flap()
	case StatePlaying:
		s.flyer.Flap()
	}
}

// reset clears per-session state: score to zero, gates cleared, flyer
// centered in the playable band with zero velocity.
func (s *Session) reset(now float64) {
	field := s.geo.FieldGeometry()

	s.score = 0
	s.gates.Clear()
	s.flyer = Flyer{
		X:       s.cfg.Flyer.X,
		Y:       (field.Height-field.GroundHeight)/2 - field.FlyerHeight/2,
		Gravity: s.cfg.Physics.Gravity,
		Impulse: s.cfg.Physics.Impulse,
	}
	s.lastSpawn = -1
	s.lastFrame = now
}

// Update runs one simulation cycle at the given monotonic timestamp.
// Outside Playing it is a no-op. The cycle order is fixed: integrate the
// flyer, spawn/advance/evict gates, then evaluate scoring and collisions.
func (s *Session) Update(now float64) {
	if s.state != StatePlaying {
		return
	}

	field := s.geo.FieldGeometry()

	dt := now - s.lastFrame
	s.lastFrame = now
	if dt > MaxStep {
		dt = MaxStep
	}
	if dt < 0 {
		dt = 0
	}

	s.flyer.Integrate(dt)
	s.lastSpawn, _ = s.gates.MaybeSpawn(now, s.lastSpawn, field)
	s.gates.Advance(dt, s.cfg.Gates.Speed)
	s.gates.Evict(s.cfg.Gates.EvictMargin)

	flyer := s.flyer.Bounds(field.FlyerWidth, field.FlyerHeight)
	v := Evaluate(flyer, field, s.gates.Gates(), s.gates.Width())

	if v.Passed > 0 {
		s.score += v.Passed
		if s.score > s.highScore {
			s.highScore = s.score
			if s.scores != nil {
				s.scores.SaveHighScore(s.highScore)
			}
		}
	}

	if v.Collision {
		s.state = StateGameOver
	}
}

// WantsFrame reports whether the driver should keep issuing update
// cycles. It is the explicit replacement for self-scheduling: the
// session stops asking for frames the moment it leaves Playing.
func (s *Session) WantsFrame() bool {
	return s.state == StatePlaying
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen this process lifetime. It never
// decreases and is always >= the current score once updated.
func (s *Session) HighScore() int {
	return s.highScore
}
