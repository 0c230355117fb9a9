package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	base := NewRectF(10, 10, 20, 20)

	tests := []struct {
		name  string
		other RectF
		want  bool
	}{
		{"full overlap", NewRectF(15, 15, 5, 5), true},
		{"partial overlap", NewRectF(25, 25, 20, 20), true},
		{"touching right edge", NewRectF(30, 10, 10, 10), false},
		{"touching bottom edge", NewRectF(10, 30, 10, 10), false},
		{"touching corner", NewRectF(30, 30, 10, 10), false},
		{"disjoint", NewRectF(100, 100, 5, 5), false},
		{"contained", NewRectF(12, 12, 2, 2), true},
		{"containing", NewRectF(0, 0, 100, 100), true},
		{"sub-unit overlap", NewRectF(29.999, 10, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.want {
				t.Errorf("%+v.Intersects(%+v) = %v, expected %v", base, tc.other, got, tc.want)
			}
			// Intersection is symmetric.
			if got := tc.other.Intersects(base); got != tc.want {
				t.Errorf("intersection not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(5, 7, 10, 3)
	if r.Right() != 15 {
		t.Errorf("Right() = %f, expected 15", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %f, expected 10", r.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 6/8", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %d", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-30, -25, 70); got != -25 {
		t.Errorf("ClampF(-30, -25, 70) = %f", got)
	}
	if got := ClampF(80, -25, 70); got != 70 {
		t.Errorf("ClampF(80, -25, 70) = %f", got)
	}
	if got := ClampF(12.5, -25, 70); got != 12.5 {
		t.Errorf("ClampF(12.5, -25, 70) = %f", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min misbehaves")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max misbehaves")
	}
}
