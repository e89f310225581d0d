package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tile-quest/internal/registry"
)

func TestWorldsTable(t *testing.T) {
	out := WorldsTable([]registry.WorldInfo{
		{ID: "world01", Title: "The Meadow", Objects: 8, Keys: 3, Doors: 3},
		{ID: "caves", Title: "Deep Caves", Objects: 12, Keys: 5, Doors: 4},
	})

	for _, want := range []string{"ID", "Title", "world01", "The Meadow", "8", "caves", "12", "Keys", "Doors", "5", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("table is missing %q:\n%s", want, out)
		}
	}
}
