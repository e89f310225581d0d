package world01

import (
	"testing"

	"github.com/vovakirdan/tile-quest/internal/registry"
	"github.com/vovakirdan/tile-quest/internal/world"
)

func TestWorldRegistered(t *testing.T) {
	w, err := registry.Get(ID)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", ID, err)
	}
	g, err := w.Grid()
	if err != nil {
		t.Fatalf("Grid() failed: %v", err)
	}
	if g.Width() != 32 || g.Height() != 18 {
		t.Errorf("map is %dx%d, expected 32x18", g.Width(), g.Height())
	}
}

func TestObjectsStandOnWalkableCells(t *testing.T) {
	w, _ := registry.Get(ID)
	g, err := w.Grid()
	if err != nil {
		t.Fatal(err)
	}

	for _, o := range w.Objects {
		if g.Blocking(o.Col, o.Row) {
			t.Errorf("%v at (%d, %d) sits on blocking terrain", o.Kind, o.Col, o.Row)
		}
	}
	// Player start tile
	if g.Blocking(11, 11) {
		t.Error("player start tile is blocked")
	}

	counts := map[world.Kind]int{}
	for _, o := range w.Objects {
		counts[o.Kind]++
	}
	if counts[world.KindKey] != 3 || counts[world.KindDoor] != 3 || counts[world.KindChest] != 1 || counts[world.KindBoots] != 1 {
		t.Errorf("manifest counts = %v", counts)
	}
}
