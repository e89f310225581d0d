package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultQuestConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultQuestConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  speed: 6\naudio:\n  enabled: false\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Player.Speed != 6 {
		t.Errorf("Player.Speed = %d, expected 6", cfg.Player.Speed)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled should be false")
	}
	if cfg.Player.SolidArea != (AreaSpec{X: 8, Y: 16, W: 32, H: 32}) {
		t.Errorf("SolidArea = %+v, expected default", cfg.Player.SolidArea)
	}
	if cfg.Display.TileSize != 48 {
		t.Errorf("TileSize = %d, expected 48", cfg.Display.TileSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuestConfig)
	}{
		{"zero tile size", func(c *QuestConfig) { c.Display.TileSize = 0 }},
		{"zero tick rate", func(c *QuestConfig) { c.Display.TickRate = 0 }},
		{"zero cell width", func(c *QuestConfig) { c.Display.CellWidth = 0 }},
		{"zero speed", func(c *QuestConfig) { c.Player.Speed = 0 }},
		{"empty solid area", func(c *QuestConfig) { c.Player.SolidArea.W = 0 }},
		{"zero threshold", func(c *QuestConfig) { c.Animation.Threshold = 0 }},
		{"negative boots bonus", func(c *QuestConfig) { c.Items.BootsBonus = -1 }},
		{"loud volume", func(c *QuestConfig) { c.Audio.Volume = 1.5 }},
		{"zero hold", func(c *QuestConfig) { c.Input.HoldMS = 0 }},
		{"negative max delta", func(c *QuestConfig) { c.Loop.MaxDeltaMS = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultQuestConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := DefaultQuestConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestParseRejectsBadTiming(t *testing.T) {
	if _, err := Parse([]byte("input:\n  hold_ms: 0\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Parse() with hold_ms 0 = %v, expected ErrInvalid", err)
	}
	if _, err := Parse([]byte("loop:\n  max_delta_ms: -5\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Parse() with negative max_delta_ms = %v, expected ErrInvalid", err)
	}

	cfg, err := Parse([]byte("loop:\n  max_delta_ms: 0\n"))
	if err != nil {
		t.Fatalf("Parse() with max_delta_ms 0 failed: %v", err)
	}
	if cfg.Loop.MaxDeltaMS != 0 {
		t.Errorf("MaxDeltaMS = %d, expected 0", cfg.Loop.MaxDeltaMS)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quest.yaml")
	if err := os.WriteFile(path, []byte("display:\n  tile_size: 24\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.TileSize != 24 {
		t.Errorf("TileSize = %d, expected 24", cfg.Display.TileSize)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("display: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultQuestConfig()
	if cfg.MessageDuration() != 2*time.Second {
		t.Errorf("MessageDuration() = %v", cfg.MessageDuration())
	}
	if cfg.WinDelay() != time.Second {
		t.Errorf("WinDelay() = %v", cfg.WinDelay())
	}
	if cfg.MaxDelta() != 250*time.Millisecond {
		t.Errorf("MaxDelta() = %v", cfg.MaxDelta())
	}
	if cfg.HoldWindow() != 220*time.Millisecond {
		t.Errorf("HoldWindow() = %v", cfg.HoldWindow())
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/quest.log")
	if err != nil || got != "/tmp/quest.log" {
		t.Errorf("ExpandHome(abs) = (%q, %v)", got, err)
	}
	got, err = ExpandHome("~/quest.log")
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if got == "~/quest.log" || filepath.Base(got) != "quest.log" {
		t.Errorf("ExpandHome(~) = %q", got)
	}
}
