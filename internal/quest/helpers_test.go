package quest

import (
	"testing"

	"github.com/vovakirdan/tile-quest/internal/config"
	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/world"
)

// testConfig uses 10px tiles, a full-tile solid area and speed 2 with the
// player starting on tile (0, 0).
func testConfig() config.QuestConfig {
	cfg := config.DefaultQuestConfig()
	cfg.Display.TileSize = 10
	cfg.Player.StartCol = 0
	cfg.Player.StartRow = 0
	cfg.Player.Speed = 2
	cfg.Player.SolidArea = config.AreaSpec{X: 0, Y: 0, W: 10, H: 10}
	return cfg
}

func mustGrid(t *testing.T, text string) *world.Grid {
	t.Helper()
	g, err := world.ParseMap([]byte(text))
	if err != nil {
		t.Fatalf("ParseMap() failed: %v", err)
	}
	return g
}

func newTestSession(t *testing.T, grid string, objs ...world.Interactable) *Session {
	t.Helper()
	s, err := NewSession(Options{
		Grid:    mustGrid(t, grid),
		Objects: objs,
		Config:  testConfig(),
	})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// step runs one full frame with the given actions held.
func step(s *Session, actions ...core.Action) []Event {
	s.SetInput(core.NewInputFrame(actions...))
	s.Update(0)
	s.Render()
	s.Advance(0)
	return s.Drain()
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func hasCue(events []Event, c core.Cue) bool {
	for _, e := range events {
		if e.Kind == EventCue && e.Cue == c {
			return true
		}
	}
	return false
}

const openGrid = "0 0 0 0\n0 0 0 0\n0 0 0 0\n0 0 0 0\n"
