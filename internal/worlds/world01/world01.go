// Package world01 registers the starting world: a walled meadow with a
// locked treasure room, three keys, three doors and a pair of boots.
package world01

import (
	_ "embed"

	"github.com/vovakirdan/tile-quest/internal/registry"
	"github.com/vovakirdan/tile-quest/internal/world"
)

// ID is the registry key of this world.
const ID = "world01"

//go:embed world01.txt
var mapText []byte

// Objects is the world's manifest, in registry order.
var Objects = []registry.ObjectSpec{
	{Kind: world.KindKey, Col: 3, Row: 11},
	{Kind: world.KindKey, Col: 22, Row: 15},
	{Kind: world.KindKey, Col: 1, Row: 1},
	{Kind: world.KindDoor, Col: 1, Row: 8},
	{Kind: world.KindDoor, Col: 9, Row: 14},
	{Kind: world.KindDoor, Col: 30, Row: 6},
	{Kind: world.KindChest, Col: 12, Row: 14},
	{Kind: world.KindBoots, Col: 4, Row: 5},
}

func init() {
	registry.Register(registry.World{
		ID:      ID,
		Title:   "The Meadow",
		Map:     mapText,
		Objects: Objects,
	})
}
