package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveType defines oscillator wave shapes
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := sampleWave(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func sampleWave(w waveType, phase float64) float64 {
	switch w {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2 * (phase - 0.5)
	case waveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		samples[i][0] *= e.gain()
		samples[i][1] *= e.gain()
		e.position++
	}
	return n, ok
}

func (e *envelope) gain() float64 {
	if e.attack > 0 && e.position < e.attack {
		return float64(e.position) / float64(e.attack)
	}
	if start := e.total - e.release; e.release > 0 && e.position >= start {
		return math.Max(0, float64(e.total-e.position)/float64(e.release))
	}
	return 1
}

func (e *envelope) Err() error { return e.streamer.Err() }

// note is one shaped tone of a sound.
type note struct {
	freq float64
	dur  time.Duration
	wave waveType
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	release := n.dur / 2
	return newEnvelope(newOscillator(n.freq, n.dur, n.wave, rate), n.dur, 5*time.Millisecond, release, rate)
}

// phrase plays notes back to back.
func phrase(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.streamer(rate))
	}
	return beep.Seq(parts...)
}

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is
// handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
