package gamemath

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 50, Y: 50, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects() is not symmetric: got %v", got)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	dx, dy, dist := Direction(0, 0, 3, 4)
	if dist != 5 {
		t.Fatalf("dist = %v, want 5", dist)
	}
	if math.Abs(dx-0.6) > 1e-9 || math.Abs(dy-0.8) > 1e-9 {
		t.Fatalf("unit vector = (%v, %v), want (0.6, 0.8)", dx, dy)
	}

	dx, dy, dist = Direction(2, 2, 2, 2)
	if dx != 0 || dy != 0 || dist != 0 {
		t.Fatalf("coincident points should give a zero vector, got (%v, %v, %v)", dx, dy, dist)
	}
}

func TestClampRect(t *testing.T) {
	bounds := Rect{X: 40, Y: 100, W: 900, H: 500}

	got := ClampRect(Rect{X: 10, Y: 650, W: 20, H: 20}, bounds)
	if got.X != 40 || got.Y != 580 {
		t.Fatalf("ClampRect() = %+v, want X=40 Y=580", got)
	}

	inside := Rect{X: 200, Y: 200, W: 20, H: 20}
	if got := ClampRect(inside, bounds); got != inside {
		t.Fatalf("ClampRect() moved a rect that was already inside: %+v", got)
	}
}
