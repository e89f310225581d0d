package registry

import (
	"testing"

	"github.com/vovakirdan/tile-quest/internal/world"
)

func TestRegisterAndGet(t *testing.T) {
	Register(World{
		ID:      "test-meadow",
		Title:   "Meadow",
		Map:     []byte("0 0\n0 1\n"),
		Objects: []ObjectSpec{{Kind: world.KindKey, Col: 0, Row: 0}},
	})

	if !Exists("test-meadow") {
		t.Fatal("Exists() should find the registered world")
	}

	w, err := Get("test-meadow")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	g, err := w.Grid()
	if err != nil {
		t.Fatalf("Grid() failed: %v", err)
	}
	if !g.Blocking(1, 1) {
		t.Error("parsed grid should have a wall at (1, 1)")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-meadow" {
			found = true
			if info.Objects != 1 || info.Keys != 1 || info.Doors != 0 || info.Title != "Meadow" {
				t.Errorf("List() entry = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered world")
	}
}

func TestInteractables(t *testing.T) {
	w := World{
		ID: "inline",
		Objects: []ObjectSpec{
			{Kind: world.KindDoor, Col: 2, Row: 3},
			{Kind: world.KindBoots, Col: 1, Row: 0},
		},
	}
	objs := w.Interactables(10)
	if len(objs) != 2 {
		t.Fatalf("Interactables() returned %d objects, expected 2", len(objs))
	}
	if objs[0].X != 20 || objs[0].Y != 30 || !objs[0].Collides {
		t.Errorf("door = %+v, expected (20, 30) colliding", objs[0])
	}
	if objs[1].X != 10 || objs[1].Y != 0 || objs[1].Collides {
		t.Errorf("boots = %+v, expected (10, 0) not colliding", objs[1])
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-world"); err == nil {
		t.Error("Get() of an unknown world should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(World{ID: "test-dup", Map: []byte("0")})
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register(World{ID: "test-dup", Map: []byte("0")})
}

func TestGridEmptyMap(t *testing.T) {
	if _, err := (World{ID: "blank"}).Grid(); err == nil {
		t.Error("Grid() of an empty map should fail")
	}
}
