package game

import (
	"strings"
	"testing"
)

func TestSnapshotStartMessage(t *testing.T) {
	s := newTestSession(nil)
	snap := s.Snapshot()

	if snap.State != StateStart {
		t.Fatalf("snapshot state = %v, expected start", snap.State)
	}
	if snap.Message != "Press Space to take off" {
		t.Errorf("start message = %q", snap.Message)
	}
}

func TestSnapshotPlayingHasNoMessage(t *testing.T) {
	s := newTestSession(nil)
	s.Activate(0)

	snap := s.Snapshot()
	if snap.Message != "" {
		t.Errorf("playing message = %q, expected empty", snap.Message)
	}
	if snap.FlyerX != 80 || snap.FlyerY != 211 {
		t.Errorf("flyer at (%f, %f), expected (80, 211)", snap.FlyerX, snap.FlyerY)
	}
	if snap.FlyerW != 34 || snap.FlyerH != 28 {
		t.Errorf("flyer size = %fx%f, expected geometry-provided 34x28", snap.FlyerW, snap.FlyerH)
	}
}

func TestSnapshotGameOverMessageIncludesScore(t *testing.T) {
	s := newTestSession(nil)
	s.Activate(0)
	s.score = 7
	s.state = StateGameOver

	snap := s.Snapshot()
	if !strings.Contains(snap.Message, "Score 7") {
		t.Errorf("game over message = %q, expected the final score", snap.Message)
	}
	if !strings.Contains(snap.Message, "retry") {
		t.Errorf("game over message = %q, expected a retry prompt", snap.Message)
	}
}

func TestSnapshotRotationClamped(t *testing.T) {
	s := newTestSession(nil)
	s.Activate(0)

	// Impulse -8.5 times 4 deg/unit is -34, clamped to -25.
	snap := s.Snapshot()
	if snap.Rotation != -25 {
		t.Errorf("rotation after flap = %f, expected clamp at -25", snap.Rotation)
	}

	s.flyer.Vel = 30 // 120 degrees raw, clamped to 70
	snap = s.Snapshot()
	if snap.Rotation != 70 {
		t.Errorf("rotation in a dive = %f, expected clamp at 70", snap.Rotation)
	}

	s.flyer.Vel = 5
	snap = s.Snapshot()
	if snap.Rotation != 20 {
		t.Errorf("rotation = %f, expected 5*4 = 20 inside the bounds", snap.Rotation)
	}
}

func TestSnapshotGateViews(t *testing.T) {
	s := newTestSession(nil)
	s.Activate(0)
	s.gates.gates = append(s.gates.gates, Gate{X: 300, TopHeight: 120, GapSize: 130, Scored: true})

	snap := s.Snapshot()
	if len(snap.Gates) != 1 {
		t.Fatalf("expected 1 gate view, got %d", len(snap.Gates))
	}

	gv := snap.Gates[0]
	if gv.X != 300 || gv.Width != 68 {
		t.Errorf("gate view position = %f width = %f", gv.X, gv.Width)
	}
	if gv.GapStart != 120 || gv.GapSize != 130 {
		t.Errorf("gap = [%f, +%f), expected [120, +130)", gv.GapStart, gv.GapSize)
	}
	// Bottom fills from gap end down to the ground line: 450-250.
	if gv.BottomHeight != 200 {
		t.Errorf("bottom height = %f, expected 200", gv.BottomHeight)
	}
	if !gv.Scored {
		t.Error("scored flag must carry through to the view")
	}
}
