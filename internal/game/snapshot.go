package game

import (
	"fmt"

	"github.com/nlipatov/skygate/internal/core"
)

// Rotation hint bounds, in degrees. Display-only: the hitbox never tilts.
const (
	rotationPerVelocity = 4.0
	rotationMin         = -25.0
	rotationMax         = 70.0
)

// GateView is the render-facing description of one gate.
type GateView struct {
	X            float64
	Width        float64
	TopHeight    float64
	GapStart     float64
	GapSize      float64
	BottomHeight float64
	Scored       bool
}

// Snapshot captures everything a renderer needs after a cycle. The
// renderer owns all visual placement; the snapshot only reports state.
type Snapshot struct {
	State     State
	Message   string
	Score     int
	HighScore int

	FlyerX, FlyerY float64
	FlyerW, FlyerH float64
	// Rotation is a display hint derived from velocity, clamped to
	// [-25, 70] degrees. Positive tilts nose-down.
	Rotation float64

	Gates []GateView
	Field FieldGeometry
}

// Snapshot returns the current render snapshot.
func (s *Session) Snapshot() Snapshot {
	field := s.geo.FieldGeometry()

	gates := s.gates.Gates()
	views := make([]GateView, len(gates))
	for i, g := range gates {
		views[i] = GateView{
			X:            g.X,
			Width:        s.gates.Width(),
			TopHeight:    g.TopHeight,
			GapStart:     g.GapStart(),
			GapSize:      g.GapSize,
			BottomHeight: g.BottomHeight(field.Height, field.GroundHeight),
			Scored:       g.Scored,
		}
	}

	return Snapshot{
		State:     s.state,
		Message:   s.message(),
		Score:     s.score,
		HighScore: s.highScore,
		FlyerX:    s.flyer.X,
		FlyerY:    s.flyer.Y,
		FlyerW:    field.FlyerWidth,
		FlyerH:    field.FlyerHeight,
		Rotation:  core.ClampF(s.flyer.Vel*rotationPerVelocity, rotationMin, rotationMax),
		Gates:     views,
		Field:     field,
	}
}

// message returns the state banner text, empty while playing.
func (s *Session) message() string {
	switch s.state {
	case StateStart:
		return "Press Space to take off"
	case StateGameOver:
		return fmt.Sprintf("Score %d  |  Press Space to retry", s.score)
	default:
		return ""
	}
}
