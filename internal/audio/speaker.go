package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tile-quest/internal/config"
	"github.com/vovakirdan/tile-quest/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays sounds on the system audio device through one shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	volume float64
	withBG bool
	logger *log.Logger
	closed bool
}

// Open initializes the audio device. When audio is disabled or the device
// is unavailable it logs the reason and returns Nop.
func Open(cfg config.AudioConfig, logger *log.Logger) Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Nop{}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio device unavailable, continuing without sound", "err", err)
		return Nop{}
	}

	s := newSpeaker(cfg, logger)
	speaker.Play(s.mixer)
	logger.Debug("audio ready", "sample_rate", int(sampleRate), "volume", cfg.Volume)
	return s
}

func newSpeaker(cfg config.AudioConfig, logger *log.Logger) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		withBG: cfg.Music,
		logger: logger,
	}
}

// Play starts a one-shot cue. CueStopMusic stops the background music.
func (s *Speaker) Play(c core.Cue) {
	if c == core.CueStopMusic {
		s.StopMusic()
		return
	}
	snd, ok := Sound(c, sampleRate, s.volume)
	if !ok {
		s.logger.Warn("unknown sound cue", "cue", c)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(snd)
	speaker.Unlock()
}

// StartMusic starts the background loop if it is enabled and not already
// playing.
func (s *Speaker) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.withBG {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if s.music != nil {
		s.music.Paused = false
		return
	}
	s.music = &beep.Ctrl{Streamer: newVolume(newMusicGenerator(sampleRate, 0.25), s.volume)}
	s.mixer.Add(s.music)
}

// StopMusic silences the background loop.
func (s *Speaker) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	speaker.Unlock()
	s.logger.Debug("music stopped")
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}
