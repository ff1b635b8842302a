package gamemath

import "math"

// Rect is an axis-aligned rectangle in screen space. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether the two rectangles share interior area.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Direction returns the unit vector from (fromX, fromY) to (toX, toY) together
// with the distance between them. A zero distance yields a zero vector.
func Direction(fromX, fromY, toX, toY float64) (dx, dy, dist float64) {
	dx, dy = toX-fromX, toY-fromY
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// ClampRect moves r so it lies inside bounds. Rects larger than bounds are
// pinned to the top-left edge.
func ClampRect(r Rect, bounds Rect) Rect {
	if r.X+r.W > bounds.Right() {
		r.X = bounds.Right() - r.W
	}
	if r.Y+r.H > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.H
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	return r
}

// ClampUnit clamps v to [-1, 1].
func ClampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
