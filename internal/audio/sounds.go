package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tile-quest/internal/core"
)

const ms = time.Millisecond

// Sound returns a finite streamer for a one-shot cue. CueStopMusic and
// unknown cues have no sound.
func Sound(c core.Cue, rate beep.SampleRate, vol float64) (beep.Streamer, bool) {
	var s beep.Streamer
	switch c {
	case core.CueCoin:
		// B5 then E6
		s = phrase(rate,
			note{987.77, 80 * ms, waveSquare},
			note{1318.51, 220 * ms, waveSquare},
		)
	case core.CueUnlock:
		s = phrase(rate,
			note{196.00, 60 * ms, waveSaw},
			note{261.63, 60 * ms, waveSaw},
			note{392.00, 160 * ms, waveSaw},
		)
	case core.CuePowerup:
		s = phrase(rate,
			note{523.25, 60 * ms, waveSine},
			note{659.25, 60 * ms, waveSine},
			note{783.99, 60 * ms, waveSine},
			note{1046.50, 200 * ms, waveSine},
		)
	case core.CueFanfare:
		s = phrase(rate,
			note{392.00, 150 * ms, waveSquare},
			note{523.25, 150 * ms, waveSquare},
			note{659.25, 150 * ms, waveSquare},
			note{783.99, 600 * ms, waveSquare},
		)
	case core.CueSpell:
		s = beep.Mix(
			newVolume(note{1320, 180 * ms, waveSine}.streamer(rate), 0.7),
			newVolume(note{1760, 180 * ms, waveSine}.streamer(rate), 0.3),
		)
	case core.CueSword:
		s = newEnvelope(newOscillator(0, 90*ms, waveNoise, rate), 90*ms, 2*ms, 80*ms, rate)
	default:
		return nil, false
	}
	return newVolume(s, vol), true
}
