package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// melody is the background loop, in Hz. Zero is a rest.
var melody = []float64{
	261.63, 329.63, 392.00, 329.63,
	293.66, 349.23, 440.00, 349.23,
	261.63, 329.63, 392.00, 523.25,
	493.88, 392.00, 293.66, 0,
}

// musicGenerator plays melody forever. It never reports the end of its
// stream, so it loops without seeking.
type musicGenerator struct {
	rate      beep.SampleRate
	noteLen   int
	pos       int
	phase     float64
	amplitude float64
}

func newMusicGenerator(rate beep.SampleRate, amplitude float64) *musicGenerator {
	return &musicGenerator{
		rate:      rate,
		noteLen:   rate.N(250 * ms),
		amplitude: amplitude,
	}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (g.pos / g.noteLen) % len(melody)
		freq := melody[idx]
		inNote := float64(g.pos%g.noteLen) / float64(g.noteLen)

		var val float64
		if freq > 0 {
			// soft pluck: fast decay inside each note
			decay := math.Exp(-4 * inNote)
			val = g.amplitude * decay * math.Sin(2*math.Pi*g.phase)
			g.phase += freq / float64(g.rate)
			g.phase -= math.Floor(g.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
