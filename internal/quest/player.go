// Package quest implements the simulation of a tile quest session: the
// player entity, the animation clock, object interactions and the
// per-frame update that ties them together. It has no rendering or
// audio dependencies; presentation effects leave the package as Events.
package quest

import (
	"github.com/vovakirdan/tile-quest/internal/config"
	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/world"
)

// Phase is a two-frame animation phase, 0 or 1.
type Phase int

// Flip toggles the phase.
func (p Phase) Flip() Phase {
	if p == 0 {
		return 1
	}
	return 0
}

// Player is the controllable entity. Positions are in pixels.
type Player struct {
	X, Y          int
	Width, Height int
	Solid         core.Rect // collision box relative to X, Y
	Direction     world.Direction
	Speed         int // pixels per frame
	Keys          int
	HasBoots      bool

	Moving   bool
	Swinging bool
	Casting  bool

	LocoPhase  Phase
	SwordPhase Phase
	SpellPhase Phase
}

// NewPlayer places a player on its start tile using the configured size,
// speed and solid area.
func NewPlayer(cfg config.QuestConfig) Player {
	tile := cfg.Display.TileSize
	area := cfg.Player.SolidArea
	return Player{
		X:         cfg.Player.StartCol * tile,
		Y:         cfg.Player.StartRow * tile,
		Width:     tile,
		Height:    tile,
		Solid:     core.NewRect(area.X, area.Y, area.W, area.H),
		Direction: world.DirDown,
		Speed:     cfg.Player.Speed,
	}
}

// Box returns the player's tile-sized hitbox used for interactions.
func (p Player) Box(tileSize int) core.Rect {
	return core.Square(p.X, p.Y, tileSize)
}

// Probe describes the player moved by (dx, dy) for a collision query.
func (p Player) Probe(dx, dy int) world.Probe {
	return world.Probe{
		X:     p.X + dx,
		Y:     p.Y + dy,
		Solid: p.Solid,
		Dir:   p.Direction,
		Speed: p.Speed,
	}
}

// Tile returns the tile the player's top-left corner is in.
func (p Player) Tile(tileSize int) (col, row int) {
	if tileSize <= 0 {
		return 0, 0
	}
	return core.FloorDiv(p.X, tileSize), core.FloorDiv(p.Y, tileSize)
}

// rescale converts every tile-relative pixel value to a new tile size.
func (p *Player) rescale(from, to int) {
	p.X = core.ScaleInt(p.X, to, from)
	p.Y = core.ScaleInt(p.Y, to, from)
	p.Width = to
	p.Height = to
	p.Solid = p.Solid.Scale(to, from)
	p.Speed = max(1, core.ScaleInt(p.Speed, to, from))
}
