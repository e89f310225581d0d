package quest

import "github.com/vovakirdan/tile-quest/internal/core"

// DefaultThreshold is the number of ticks a phase holds before it flips,
// minus one.
const DefaultThreshold = 10

// AnimationClock drives the locomotion, sword and spell phases from one
// shared counter.
type AnimationClock struct {
	Threshold int
	Counter   int
}

// NewAnimationClock creates a clock. A non-positive threshold falls back
// to DefaultThreshold.
func NewAnimationClock(threshold int) *AnimationClock {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &AnimationClock{Threshold: threshold}
}

// Tick advances the clock by one frame using the player's Moving,
// Swinging and Casting flags and returns the cues of any phase flips,
// spell before sword.
func (c *AnimationClock) Tick(p *Player) []core.Cue {
	if !p.Moving {
		p.LocoPhase = 0
	}
	if !p.Moving && !p.Swinging && !p.Casting {
		c.Counter = 0
		return nil
	}

	c.Counter++
	if c.Counter <= c.Threshold {
		return nil
	}
	c.Counter = 0

	var cues []core.Cue
	if p.Moving {
		p.LocoPhase = p.LocoPhase.Flip()
	}
	if p.Casting {
		p.SpellPhase = p.SpellPhase.Flip()
		cues = append(cues, core.CueSpell)
	}
	if p.Swinging {
		p.SwordPhase = p.SwordPhase.Flip()
		cues = append(cues, core.CueSword)
	}
	return cues
}

// Reset zeroes the shared counter.
func (c *AnimationClock) Reset() {
	c.Counter = 0
}
