package quest

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-quest/internal/core"
	"github.com/vovakirdan/tile-quest/internal/world"
)

// Texts shown by interactions.
const (
	TextKey      = "You got a Key!"
	TextDoor     = "Door Opened!"
	TextNeedKey  = "You need a Key!"
	TextBoots    = "Speed Up!"
	TextTreasure = "Treasure Found!"
	TextWin      = "Congratulations! You found the treasure!"
)

// Rules are the tunable effects of interactions.
type Rules struct {
	BootsBonus int           // speed added by boots
	WinDelay   time.Duration // delay before the win notification
}

// InteractionEngine resolves the object the player is standing on.
// It remembers which locked door was last reported and whether the chest
// has already been found.
type InteractionEngine struct {
	rules  Rules
	logger *log.Logger

	lockedDoor int  // ID of the locked door currently overlapped, 0 if none
	clear      bool // the previous call found no object
	won        bool
}

// NewInteractionEngine creates an engine.
func NewInteractionEngine(rules Rules, logger *log.Logger) *InteractionEngine {
	return &InteractionEngine{rules: rules, logger: logger}
}

// Won reports whether the chest has been found.
func (e *InteractionEngine) Won() bool {
	return e.won
}

// Interact resolves the first object in registry order whose tile box
// overlaps the player's and returns the resulting events.
func (e *InteractionEngine) Interact(p *Player, reg *world.Registry, tileSize int) []Event {
	obj, ok := reg.FirstOverlap(p.Box(tileSize), tileSize)
	if !ok {
		e.lockedDoor = 0
		if !e.clear {
			e.clear = true
			e.logger.Debug("no object under player", "x", p.X, "y", p.Y)
		}
		return nil
	}
	e.clear = false
	if obj.Kind != world.KindDoor || obj.ID != e.lockedDoor {
		e.lockedDoor = 0
	}

	switch obj.Kind {
	case world.KindKey:
		p.Keys++
		reg.Remove(obj.ID)
		doors := reg.SetCollides(world.KindDoor, false)
		e.logger.Debug("key picked up", "id", obj.ID, "keys", p.Keys, "doors_unlocked", doors)
		return []Event{Message(TextKey), CueEvent(core.CueCoin)}

	case world.KindDoor:
		if p.Keys > 0 {
			p.Keys--
			reg.Remove(obj.ID)
			e.logger.Debug("door opened", "id", obj.ID, "keys", p.Keys)
			return []Event{Message(TextDoor), CueEvent(core.CueUnlock)}
		}
		if e.lockedDoor == obj.ID {
			return nil
		}
		e.lockedDoor = obj.ID
		return []Event{Message(TextNeedKey)}

	case world.KindBoots:
		p.Speed += e.rules.BootsBonus
		p.HasBoots = true
		reg.Remove(obj.ID)
		e.logger.Debug("boots picked up", "id", obj.ID, "speed", p.Speed)
		return []Event{Message(TextBoots), CueEvent(core.CuePowerup)}

	case world.KindChest:
		if e.won {
			return nil
		}
		e.won = true
		e.logger.Info("treasure found", "id", obj.ID)
		return []Event{
			Message(TextTreasure),
			CueEvent(core.CueFanfare),
			CueEvent(core.CueStopMusic),
			Notification(TextWin, e.rules.WinDelay),
		}

	default:
		e.logger.Warn("unknown object kind", "id", obj.ID, "kind", obj.Kind)
		return nil
	}
}
