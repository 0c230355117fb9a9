package game

import (
	"github.com/nlipatov/skygate/internal/core"
)

// Outcome classifies the result of one evaluation cycle.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeScored
	OutcomeCollision
)

// Verdict is the result of evaluating one frame. A frame can both score
// and collide; passes are banked before the collision is acted on.
type Verdict struct {
	Passed    int  // Gates newly passed this frame
	Collision bool // Fatal contact with a boundary or gate segment
}

// Outcome reduces the verdict to a single classification, with collision
// taking precedence over scoring.
func (v Verdict) Outcome() Outcome {
	switch {
	case v.Collision:
		return OutcomeCollision
	case v.Passed > 0:
		return OutcomeScored
	default:
		return OutcomeContinue
	}
}

// Evaluate runs the per-frame scoring and collision checks.
//
// Scoring runs first: each gate not yet scored whose trailing edge is
// behind the flyer's leading edge is flagged (at most once, ever) and
// counted. Then collision: the field's top and ground lines are checked
// inclusively (any touch is fatal), while gate segments require strict
// rectangle overlap (touching edges do not collide). The asymmetry is
// intentional. Gate checks scan in spawn order and short-circuit on the
// first hit.
func Evaluate(flyer core.RectF, field FieldGeometry, gates []Gate, gateWidth float64) Verdict {
	var v Verdict

	leading := flyer.Right()
	for i := range gates {
		if !gates[i].Scored && gates[i].X+gateWidth < leading {
			gates[i].Scored = true
			v.Passed++
		}
	}

	if flyer.Y <= 0 || flyer.Bottom() >= field.Height-field.GroundHeight {
		v.Collision = true
		return v
	}

	for i := range gates {
		top := gates[i].TopRect(gateWidth)
		bottom := gates[i].BottomRect(gateWidth, field.Height, field.GroundHeight)
		if flyer.Intersects(top) || flyer.Intersects(bottom) {
			v.Collision = true
			break
		}
	}

	return v
}
