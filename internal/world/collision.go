package world

import "github.com/vovakirdan/tile-quest/internal/core"

// Direction is the facing of an entity.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Probe is a proposed entity placement to be checked for collisions.
type Probe struct {
	X, Y  int       // proposed top-left position in pixels
	Solid core.Rect // collision sub-rectangle, relative to X/Y
	Dir   Direction // only this edge of the solid box is swept
	Speed int       // sweep distance in pixels
}

// Edges returns the inclusive pixel edges of the solid box with the
// leading edge pushed out by Speed.
func (p Probe) Edges() (left, right, top, bottom int) {
	left = p.X + p.Solid.X
	right = p.X + p.Solid.X + p.Solid.W - 1
	top = p.Y + p.Solid.Y
	bottom = p.Y + p.Solid.Y + p.Solid.H - 1

	switch p.Dir {
	case DirUp:
		top -= p.Speed
	case DirDown:
		bottom += p.Speed
	case DirLeft:
		left -= p.Speed
	case DirRight:
		right += p.Speed
	}
	return left, right, top, bottom
}

// HitsTerrain reports whether any corner of the swept solid box lands on a
// blocking cell. Only the four corners are sampled.
func HitsTerrain(p Probe, grid *Grid, tileSize int) bool {
	if tileSize <= 0 {
		return true
	}
	l, r, t, b := p.Edges()
	left := core.FloorDiv(l, tileSize)
	right := core.FloorDiv(r, tileSize)
	top := core.FloorDiv(t, tileSize)
	bottom := core.FloorDiv(b, tileSize)

	return grid.Blocking(left, top) ||
		grid.Blocking(right, top) ||
		grid.Blocking(left, bottom) ||
		grid.Blocking(right, bottom)
}

// HitsObject reports whether the tile box at the probe position overlaps
// any object whose collision flag is set. The sweep is not applied here.
func HitsObject(p Probe, objects []Interactable, tileSize int) bool {
	box := core.Square(p.X, p.Y, tileSize)
	for _, o := range objects {
		if o.Collides && box.Intersects(o.Box(tileSize)) {
			return true
		}
	}
	return false
}

// WouldCollide reports whether the probe is blocked by terrain or by a
// colliding object. A non-positive tile size always blocks.
func WouldCollide(p Probe, grid *Grid, objects []Interactable, tileSize int) bool {
	if tileSize <= 0 || grid == nil {
		return true
	}
	return HitsTerrain(p, grid, tileSize) || HitsObject(p, objects, tileSize)
}
