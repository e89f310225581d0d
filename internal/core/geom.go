// Package core provides fundamental types shared by the simulation and the
// presentation layer. It has no external dependencies (especially no Bubble
// Tea) so the game logic stays pure and testable.
package core

// Rect is an axis-aligned box in pixel space.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns a side-by-side box, the shape every tile-sized hitbox uses.
func Square(x, y, side int) Rect {
	return Rect{X: x, Y: y, W: side, H: side}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Scale multiplies every component by num/den, rounding to nearest.
// A non-positive den returns r unchanged.
func (r Rect) Scale(num, den int) Rect {
	if den <= 0 {
		return r
	}
	return Rect{
		X: ScaleInt(r.X, num, den),
		Y: ScaleInt(r.Y, num, den),
		W: ScaleInt(r.W, num, den),
		H: ScaleInt(r.H, num, den),
	}
}

// ScaleInt returns v*num/den rounded to the nearest integer (half away from zero).
func ScaleInt(v, num, den int) int {
	if den <= 0 {
		return v
	}
	p := v * num
	if p < 0 {
		return -((-p + den/2) / den)
	}
	return (p + den/2) / den
}

// FloorDiv divides rounding toward negative infinity, so pixel -1 lands in
// tile -1 rather than tile 0. d must be positive.
func FloorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
