// Package audio plays the game's sound cues and background music.
// All sounds are synthesized; there are no asset files.
package audio

import "github.com/vovakirdan/tile-quest/internal/core"

// Player is the sound collaborator of the presentation layer.
// Implementations never fail loudly: problems are logged and skipped.
type Player interface {
	Play(c core.Cue)
	StartMusic()
	StopMusic()
	Close()
}

// Nop is a Player that makes no sound.
type Nop struct{}

func (Nop) Play(core.Cue) {}
func (Nop) StartMusic()   {}
func (Nop) StopMusic()    {}
func (Nop) Close()        {}
