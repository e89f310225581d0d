package config

import (
	_ "embed"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

// DefaultQuestConfig returns the built-in configuration.
// It matches defaults/quest.yaml.
func DefaultQuestConfig() QuestConfig {
	return QuestConfig{
		World: WorldConfig{
			ID: "world01",
		},
		Display: DisplayConfig{
			TileSize:  48,
			TickRate:  60,
			CellWidth: 2,
		},
		Player: PlayerConfig{
			StartCol:  11,
			StartRow:  11,
			Speed:     4,
			SolidArea: AreaSpec{X: 8, Y: 16, W: 32, H: 32},
		},
		Items: ItemsConfig{
			BootsBonus: 1,
		},
		Animation: AnimationConfig{
			Threshold: 10,
		},
		Messages: MessagesConfig{
			DurationMS: 2000,
			WinDelayMS: 1000,
		},
		Input: InputConfig{
			HoldMS: 220,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
			Music:   true,
		},
		Loop: LoopConfig{
			MaxDeltaMS: 250,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultQuestYAML
}
