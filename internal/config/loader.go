package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Load loads the game configuration.
// Search order: customPath -> ~/.tilequest/configs/quest.yaml -> ./configs/quest.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (QuestConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return QuestConfig{}, fmt.Errorf("config: failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return QuestConfig{}, fmt.Errorf("config: failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "quest.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "quest.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultQuestYAML)
	if err != nil {
		return DefaultQuestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (QuestConfig, error) {
	cfg := DefaultQuestConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return QuestConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return QuestConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation can not run with.
func (c QuestConfig) Validate() error {
	switch {
	case c.Display.TileSize <= 0:
		return fmt.Errorf("%w: display.tile_size must be positive, got %d", ErrInvalid, c.Display.TileSize)
	case c.Display.TickRate <= 0:
		return fmt.Errorf("%w: display.tick_rate must be positive, got %d", ErrInvalid, c.Display.TickRate)
	case c.Display.CellWidth <= 0:
		return fmt.Errorf("%w: display.cell_width must be positive, got %d", ErrInvalid, c.Display.CellWidth)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed must be positive, got %d", ErrInvalid, c.Player.Speed)
	case c.Player.SolidArea.W <= 0 || c.Player.SolidArea.H <= 0:
		return fmt.Errorf("%w: player.solid_area must have positive size", ErrInvalid)
	case c.Animation.Threshold <= 0:
		return fmt.Errorf("%w: animation.threshold must be positive, got %d", ErrInvalid, c.Animation.Threshold)
	case c.Items.BootsBonus < 0:
		return fmt.Errorf("%w: items.boots_bonus must not be negative", ErrInvalid)
	case c.Input.HoldMS <= 0:
		return fmt.Errorf("%w: input.hold_ms must be positive, got %d", ErrInvalid, c.Input.HoldMS)
	case c.Loop.MaxDeltaMS < 0:
		return fmt.Errorf("%w: loop.max_delta_ms must not be negative, got %d", ErrInvalid, c.Loop.MaxDeltaMS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// MessageDuration returns how long on-screen messages stay visible.
func (c QuestConfig) MessageDuration() time.Duration {
	return time.Duration(c.Messages.DurationMS) * time.Millisecond
}

// WinDelay returns the delay before the win notification is surfaced.
func (c QuestConfig) WinDelay() time.Duration {
	return time.Duration(c.Messages.WinDelayMS) * time.Millisecond
}

// HoldWindow returns how long a key press keeps its action pressed.
func (c QuestConfig) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMS) * time.Millisecond
}

// MaxDelta returns the clamp for a single frame delta.
func (c QuestConfig) MaxDelta() time.Duration {
	return time.Duration(c.Loop.MaxDeltaMS) * time.Millisecond
}

// UserPath returns a path under ~/.tilequest, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".tilequest"}, elem...)...)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
