// Package registry provides a global registry of playable worlds.
// Worlds register themselves in init() functions, allowing the platform
// to discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tile-quest/internal/world"
)

// ObjectSpec places one interactable, in tile coordinates.
type ObjectSpec struct {
	Kind world.Kind
	Col  int
	Row  int
}

// World is a map plus the manifest of objects placed on it.
type World struct {
	ID      string
	Title   string
	Map     []byte       // map file contents
	Objects []ObjectSpec // in manifest order
}

// Grid parses the world's map.
func (w World) Grid() (*world.Grid, error) {
	g, err := world.ParseMap(w.Map)
	if err != nil {
		return nil, fmt.Errorf("registry: world %q: %w", w.ID, err)
	}
	return g, nil
}

// Interactables places the manifest in pixel space for the given tile size.
func (w World) Interactables(tileSize int) []world.Interactable {
	objs := make([]world.Interactable, 0, len(w.Objects))
	for _, o := range w.Objects {
		objs = append(objs, world.NewInteractable(o.Kind, o.Col*tileSize, o.Row*tileSize))
	}
	return objs
}

// WorldInfo contains metadata about a registered world.
type WorldInfo struct {
	ID      string
	Title   string
	Objects int
	Keys    int
	Doors   int
}

var (
	worlds = make(map[string]World)
	mu     sync.RWMutex
)

// Register adds a world to the registry.
// Typically called from a world package's init() function.
// Panics if a world with the same ID is already registered.
func Register(w World) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := worlds[w.ID]; exists {
		panic(fmt.Sprintf("registry: world %q already registered", w.ID))
	}
	worlds[w.ID] = w
}

// List returns information about all registered worlds, sorted by ID.
func List() []WorldInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]WorldInfo, 0, len(worlds))
	for _, w := range worlds {
		objs := world.NewRegistry(w.Interactables(1)...)
		result = append(result, WorldInfo{
			ID:      w.ID,
			Title:   w.Title,
			Objects: objs.Len(),
			Keys:    objs.CountKind(world.KindKey),
			Doors:   objs.CountKind(world.KindDoor),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the world registered under id.
// Returns an error if the world ID is not registered.
func Get(id string) (World, error) {
	mu.RLock()
	defer mu.RUnlock()

	w, ok := worlds[id]
	if !ok {
		return World{}, fmt.Errorf("registry: unknown world %q", id)
	}
	return w, nil
}

// Exists checks if a world with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := worlds[id]
	return ok
}
