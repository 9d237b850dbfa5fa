package core

import "testing"

func TestRectFOverlapsX(t *testing.T) {
	actor := CenteredRectF(200, 300, 30, 30) // spans x 185..215

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"under actor", RectF{X: 140, Y: 315, W: 400, H: 20}, true},
		{"right edge touching", RectF{X: 215, Y: 315, W: 100, H: 20}, false},
		{"left edge touching", RectF{X: 85, Y: 315, W: 100, H: 20}, false},
		{"one pixel in", RectF{X: 214, Y: 315, W: 100, H: 20}, true},
		{"far right", RectF{X: 600, Y: 315, W: 100, H: 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := actor.OverlapsX(tc.other); result != tc.expected {
				t.Errorf("OverlapsX() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := CenteredRectF(200, 300, 30, 30)

	if r.Left() != 185 || r.Right() != 215 {
		t.Errorf("Left/Right = %v/%v, expected 185/215", r.Left(), r.Right())
	}
	if r.Top() != 285 || r.Bottom() != 315 {
		t.Errorf("Top/Bottom = %v/%v, expected 285/315", r.Top(), r.Bottom())
	}
	if !r.OverlapsY(RectF{X: 0, Y: 300, W: 10, H: 20}) {
		t.Error("OverlapsY() = false, expected true")
	}
	if r.OverlapsY(RectF{X: 0, Y: 315, W: 10, H: 20}) {
		t.Error("OverlapsY() should not count a touching top edge")
	}
}

func TestRectFToCells(t *testing.T) {
	tests := []struct {
		name     string
		r        RectF
		expected Rect
	}{
		{"aligned", RectF{X: 100, Y: 200, W: 50, H: 40}, NewRect(10, 10, 5, 2)},
		{"partial cells", RectF{X: 105, Y: 210, W: 10, H: 5}, NewRect(10, 10, 2, 1)},
		{"sub-cell size", RectF{X: 101, Y: 201, W: 1, H: 1}, NewRect(10, 10, 1, 1)},
		{"negative x", RectF{X: -15, Y: 0, W: 30, H: 20}, NewRect(-2, 0, 4, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.ToCells(10, 20); got != tc.expected {
				t.Errorf("ToCells() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{250, 150, 350, 250},
		{120, 150, 350, 150},
		{361.5, 150, 350, 350},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
