package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tile-quest/internal/core"
)

// ErrUnknownKind is returned when a manifest names an object kind that does
// not exist.
var ErrUnknownKind = errors.New("world: unknown object kind")

// Kind is the closed set of interactable object types.
type Kind int

const (
	KindKey Kind = iota
	KindDoor
	KindBoots
	KindChest
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindDoor:
		return "door"
	case KindBoots:
		return "boots"
	case KindChest:
		return "chest"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind returns the kind with the given name (case-insensitive).
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "key":
		return KindKey, nil
	case "door":
		return KindDoor, nil
	case "boots":
		return KindBoots, nil
	case "chest":
		return KindChest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Interactable is a world object the player can touch.
// X and Y are in pixel space; the hitbox is always one tile square.
type Interactable struct {
	ID       int
	Kind     Kind
	X, Y     int
	Collides bool // blocks the player's movement while true
}

// NewInteractable creates an object with the default collision flag for
// its kind: doors block, everything else can be walked onto.
func NewInteractable(kind Kind, x, y int) Interactable {
	return Interactable{
		Kind:     kind,
		X:        x,
		Y:        y,
		Collides: kind == KindDoor,
	}
}

// Box returns the object's hitbox for the given tile size.
func (o Interactable) Box(tileSize int) core.Rect {
	return core.Square(o.X, o.Y, tileSize)
}

// Registry is the ordered, mutable collection of live objects.
// Order is manifest order and is the tie-breaker for overlap queries.
// It is owned by a single session and is not safe for concurrent use.
type Registry struct {
	items  []Interactable
	nextID int
}

// NewRegistry creates a registry and assigns IDs in the given order.
func NewRegistry(objects ...Interactable) *Registry {
	r := &Registry{items: make([]Interactable, 0, len(objects)), nextID: 1}
	for _, o := range objects {
		r.Add(o)
	}
	return r
}

// Add appends an object and returns its assigned ID.
func (r *Registry) Add(o Interactable) int {
	o.ID = r.nextID
	r.nextID++
	r.items = append(r.items, o)
	return o.ID
}

// Len returns the number of live objects.
func (r *Registry) Len() int {
	return len(r.items)
}

// Snapshot returns a copy of the live objects in registry order.
// Callers may iterate it while the registry is being modified.
func (r *Registry) Snapshot() []Interactable {
	return append([]Interactable(nil), r.items...)
}

// Get returns the object with the given ID.
func (r *Registry) Get(id int) (Interactable, bool) {
	for _, o := range r.items {
		if o.ID == id {
			return o, true
		}
	}
	return Interactable{}, false
}

// Remove drops the object with the given ID. The backing slice is rebuilt
// rather than spliced, so earlier snapshots stay valid.
func (r *Registry) Remove(id int) bool {
	kept := make([]Interactable, 0, len(r.items))
	removed := false
	for _, o := range r.items {
		if o.ID == id {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	r.items = kept
	return removed
}

// SetCollides sets the collision flag on every object of a kind and
// returns how many were touched.
func (r *Registry) SetCollides(kind Kind, collides bool) int {
	n := 0
	for i := range r.items {
		if r.items[i].Kind == kind {
			r.items[i].Collides = collides
			n++
		}
	}
	return n
}

// CountKind returns the number of live objects of a kind.
func (r *Registry) CountKind(kind Kind) int {
	n := 0
	for _, o := range r.items {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// FirstOverlap returns the first object, in registry order, whose tile box
// intersects box.
func (r *Registry) FirstOverlap(box core.Rect, tileSize int) (Interactable, bool) {
	for _, o := range r.items {
		if box.Intersects(o.Box(tileSize)) {
			return o, true
		}
	}
	return Interactable{}, false
}

// Rescale moves every object from one tile size to another.
func (r *Registry) Rescale(from, to int) {
	for i := range r.items {
		r.items[i].X = core.ScaleInt(r.items[i].X, to, from)
		r.items[i].Y = core.ScaleInt(r.items[i].Y, to, from)
	}
}
