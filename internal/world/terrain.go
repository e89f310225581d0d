// Package world holds the static and semi-static parts of a session: the
// terrain grid parsed from a map file, the registry of interactable objects,
// and the collision rules that tie the two to a moving entity.
package world

// Terrain classifies a grid cell.
type Terrain int

// Terrain codes as they appear in map files.
const (
	TerrainOpen  Terrain = 0 // grass
	TerrainWall  Terrain = 1
	TerrainWater Terrain = 2
	TerrainEarth Terrain = 3
	TerrainTree  Terrain = 4
	TerrainSand  Terrain = 5

	// TerrainUnknown marks a token that was not an integer. It is walkable
	// and has no sprite.
	TerrainUnknown Terrain = -1
)

// IsBlocking reports whether an entity can not enter a cell of this terrain.
func IsBlocking(t Terrain) bool {
	switch t {
	case TerrainWall, TerrainWater, TerrainTree:
		return true
	default:
		return false
	}
}

// Known reports whether t is one of the six drawable terrain codes.
func (t Terrain) Known() bool {
	return t >= TerrainOpen && t <= TerrainSand
}

func (t Terrain) String() string {
	switch t {
	case TerrainOpen:
		return "grass"
	case TerrainWall:
		return "wall"
	case TerrainWater:
		return "water"
	case TerrainEarth:
		return "earth"
	case TerrainTree:
		return "tree"
	case TerrainSand:
		return "sand"
	default:
		return "unknown"
	}
}
