// Package config provides YAML-based configuration loading for the game.
package config

// QuestConfig contains all tunables for a play session.
type QuestConfig struct {
	World     WorldConfig     `yaml:"world"`
	Display   DisplayConfig   `yaml:"display"`
	Player    PlayerConfig    `yaml:"player"`
	Items     ItemsConfig     `yaml:"items"`
	Animation AnimationConfig `yaml:"animation"`
	Messages  MessagesConfig  `yaml:"messages"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
	Loop      LoopConfig      `yaml:"loop"`
}

// WorldConfig selects the world to play.
type WorldConfig struct {
	ID  string `yaml:"id"`  // registered world ID
	Map string `yaml:"map"` // optional map file replacing the world's embedded map
}

// DisplayConfig defines presentation scale.
type DisplayConfig struct {
	TileSize  int `yaml:"tile_size"`  // pixels per tile
	TickRate  int `yaml:"tick_rate"`  // frames per second
	CellWidth int `yaml:"cell_width"` // terminal columns per tile
}

// PlayerConfig defines the player's starting state.
// Pixel values are relative to Display.TileSize.
type PlayerConfig struct {
	StartCol  int      `yaml:"start_col"`
	StartRow  int      `yaml:"start_row"`
	Speed     int      `yaml:"speed"`
	SolidArea AreaSpec `yaml:"solid_area"`
}

// AreaSpec is a rectangle in pixels.
type AreaSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ItemsConfig defines pickup effects.
type ItemsConfig struct {
	BootsBonus int `yaml:"boots_bonus"` // speed added by boots, px per frame
}

// AnimationConfig defines sprite timing.
type AnimationConfig struct {
	Threshold int `yaml:"threshold"` // phase flips when the counter exceeds this
}

// MessagesConfig defines how long presentation text stays up.
type MessagesConfig struct {
	DurationMS int `yaml:"duration_ms"`
	WinDelayMS int `yaml:"win_delay_ms"`
}

// InputConfig defines held-key emulation.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // an action stays pressed this long after its last key event
}

// AudioConfig defines the sound collaborator.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
	Music   bool    `yaml:"music"`
}

// LoopConfig defines scheduler limits.
type LoopConfig struct {
	MaxDeltaMS int `yaml:"max_delta_ms"` // frame deltas above this are clamped
}
