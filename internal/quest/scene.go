package quest

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tile-quest/internal/world"
)

// ObjectView is an object as drawn.
type ObjectView struct {
	Kind world.Kind
	X, Y int
}

// PlayerView is the player as drawn.
type PlayerView struct {
	X, Y, W, H int
	Direction  world.Direction
	Sprite     SpriteKey
}

// Scene is a read-only snapshot of everything a renderer needs.
type Scene struct {
	Grid     *world.Grid
	TileSize int
	Objects  []ObjectView
	Player   PlayerView
	Keys     int
	HasBoots bool
	PlayTime time.Duration
	Won      bool
}

// KeysLabel returns the key counter text.
func (s Scene) KeysLabel() string {
	return fmt.Sprintf("Keys: %d", s.Keys)
}

// TimeLabel returns the play time in seconds with two decimals.
func (s Scene) TimeLabel() string {
	return fmt.Sprintf("Time: %.2f", s.PlayTime.Seconds())
}
