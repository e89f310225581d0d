package world

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tile-quest/internal/core"
)

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindKey, KindDoor, KindBoots, KindChest} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = (%v, %v)", k.String(), got, err)
		}
	}
	if _, err := ParseKind("potion"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(potion) error = %v, expected ErrUnknownKind", err)
	}
}

func TestNewInteractableCollision(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected bool
	}{
		{KindKey, false},
		{KindDoor, true},
		{KindBoots, false},
		{KindChest, false},
	}
	for _, tc := range tests {
		if got := NewInteractable(tc.kind, 0, 0).Collides; got != tc.expected {
			t.Errorf("NewInteractable(%v).Collides = %v, expected %v", tc.kind, got, tc.expected)
		}
	}
}

func TestRegistryRemoveKeepsSnapshots(t *testing.T) {
	r := NewRegistry(
		NewInteractable(KindKey, 0, 0),
		NewInteractable(KindDoor, 10, 0),
		NewInteractable(KindKey, 20, 0),
	)

	snap := r.Snapshot()
	for _, o := range snap {
		if o.Kind == KindKey {
			r.Remove(o.ID)
		}
	}

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", r.Len())
	}
	if len(snap) != 3 || snap[2].Kind != KindKey {
		t.Error("removal must not disturb an earlier snapshot")
	}
	if r.Remove(snap[0].ID) {
		t.Error("removing an already removed ID should report false")
	}
	if _, ok := r.Get(snap[1].ID); !ok {
		t.Error("door should still be present")
	}
}

func TestRegistryIDsFollowManifestOrder(t *testing.T) {
	r := NewRegistry(NewInteractable(KindChest, 0, 0), NewInteractable(KindBoots, 0, 0))
	snap := r.Snapshot()
	if snap[0].ID != 1 || snap[1].ID != 2 {
		t.Errorf("IDs = %d, %d, expected 1, 2", snap[0].ID, snap[1].ID)
	}
}

func TestRegistrySetCollides(t *testing.T) {
	r := NewRegistry(
		NewInteractable(KindDoor, 0, 0),
		NewInteractable(KindKey, 0, 0),
		NewInteractable(KindDoor, 0, 0),
	)

	if n := r.SetCollides(KindDoor, false); n != 2 {
		t.Errorf("SetCollides() touched %d, expected 2", n)
	}
	for _, o := range r.Snapshot() {
		if o.Collides {
			t.Errorf("%v still collides", o.Kind)
		}
	}
}

func TestRegistryCountKind(t *testing.T) {
	r := NewRegistry(
		NewInteractable(KindDoor, 0, 0),
		NewInteractable(KindKey, 0, 0),
		NewInteractable(KindDoor, 0, 0),
	)
	if n := r.CountKind(KindDoor); n != 2 {
		t.Errorf("CountKind(door) = %d, expected 2", n)
	}

	r.Remove(r.Snapshot()[0].ID)
	if n := r.CountKind(KindDoor); n != 1 {
		t.Errorf("CountKind(door) after Remove = %d, expected 1", n)
	}
	if n := r.CountKind(KindChest); n != 0 {
		t.Errorf("CountKind(chest) = %d, expected 0", n)
	}
}

func TestRegistryFirstOverlap(t *testing.T) {
	r := NewRegistry(
		NewInteractable(KindChest, 30, 30),
		NewInteractable(KindKey, 5, 0),
		NewInteractable(KindBoots, 0, 5),
	)

	// Both the key and the boots overlap; registry order decides.
	got, ok := r.FirstOverlap(core.Square(0, 0, 10), 10)
	if !ok || got.Kind != KindKey {
		t.Errorf("FirstOverlap() = (%v, %v), expected key", got.Kind, ok)
	}

	if _, ok := r.FirstOverlap(core.Square(100, 100, 10), 10); ok {
		t.Error("FirstOverlap() far away should find nothing")
	}
}

func TestRegistryRescale(t *testing.T) {
	r := NewRegistry(NewInteractable(KindKey, 144, 528))
	r.Rescale(48, 24)
	o := r.Snapshot()[0]
	if o.X != 72 || o.Y != 264 {
		t.Errorf("Rescale() moved key to (%d, %d), expected (72, 264)", o.X, o.Y)
	}
}
