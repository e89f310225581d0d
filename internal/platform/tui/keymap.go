package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-quest/internal/core"
)

// KeyMap defines the key bindings during play.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Sword   key.Binding
	Spell   key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Sword, k.Spell, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Sword, k.Spell},
		{k.Dismiss, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Sword: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "sword"),
		),
		Spell: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "spell"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Action returns the game action bound to a key, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Sword):
		return core.ActionSword
	case key.Matches(msg, k.Spell):
		return core.ActionSpell
	}
	return core.ActionNone
}

// HeldKeys emulates key-up events. Terminals only report presses (and
// auto-repeat), so an action counts as held until hold has passed since
// its last press.
type HeldKeys struct {
	hold    time.Duration
	pressed map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:    hold,
		pressed: make(map[core.Action]time.Time),
	}
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Press records a press at now. Pressing a direction releases its
// opposite.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	h.pressed[a] = now
	if o, ok := opposite[a]; ok {
		delete(h.pressed, o)
	}
}

// Frame returns the actions held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.pressed {
		if now.Sub(at) >= h.hold {
			delete(h.pressed, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Reset releases every action.
func (h *HeldKeys) Reset() {
	clear(h.pressed)
}
