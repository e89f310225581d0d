package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tile-quest/internal/config"
	"github.com/vovakirdan/tile-quest/internal/core"
)

const testRate = beep.SampleRate(8000)

// drain pulls a stream to its end, giving up after limit samples.
func drain(s beep.Streamer, limit int) (total int, peak float64) {
	buf := make([][2]float64, 256)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestSoundForEveryCue(t *testing.T) {
	cues := []core.Cue{
		core.CueCoin,
		core.CueUnlock,
		core.CuePowerup,
		core.CueFanfare,
		core.CueSpell,
		core.CueSword,
	}

	for _, c := range cues {
		t.Run(string(c), func(t *testing.T) {
			s, ok := Sound(c, testRate, 0.5)
			if !ok {
				t.Fatalf("Sound(%q) has no streamer", c)
			}
			limit := testRate.N(5e9) // 5s
			total, peak := drain(s, limit)
			if total == 0 {
				t.Error("sound produced no samples")
			}
			if total >= limit {
				t.Error("one-shot sound did not end")
			}
			if peak > 0.5+1e-9 {
				t.Errorf("peak = %v, expected volume to cap it at 0.5", peak)
			}
		})
	}
}

func TestSoundUnknownCue(t *testing.T) {
	for _, c := range []core.Cue{core.CueStopMusic, "explosion", ""} {
		if _, ok := Sound(c, testRate, 1); ok {
			t.Errorf("Sound(%q) should have no streamer", c)
		}
	}
}

func TestSoundSilentAtZeroVolume(t *testing.T) {
	s, _ := Sound(core.CueCoin, testRate, 0)
	if _, peak := drain(s, testRate.N(5e9)); peak != 0 {
		t.Errorf("peak = %v at volume 0, expected silence", peak)
	}
}

func TestMusicLoopsForever(t *testing.T) {
	g := newMusicGenerator(testRate, 0.25)
	onePass := g.noteLen * len(melody)
	total, peak := drain(g, 3*onePass)
	if total < 3*onePass {
		t.Errorf("music stopped after %d samples", total)
	}
	if peak == 0 || peak > 0.25 {
		t.Errorf("peak = %v, expected (0, 0.25]", peak)
	}
}

func TestOpenDisabled(t *testing.T) {
	p := Open(config.AudioConfig{Enabled: false}, nil)
	if _, ok := p.(Nop); !ok {
		t.Fatalf("Open() with audio disabled = %T, expected Nop", p)
	}
	// Nop must accept every call.
	p.StartMusic()
	p.Play(core.CueFanfare)
	p.StopMusic()
	p.Close()
}
