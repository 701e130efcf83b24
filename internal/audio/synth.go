// Package audio synthesizes the game's sound effects and background melody.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyhop/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Config controls the synthesizer.
type Config struct {
	Volume      float64 // effects, 0..1
	MusicVolume float64 // melody, 0..1
}

// DefaultConfig returns moderate volumes.
func DefaultConfig() Config {
	return Config{Volume: 0.5, MusicVolume: 0.25}
}

// Synth plays generated tones through the system speaker.
type Synth struct {
	cfg    Config
	mixer  *beep.Mixer
	melody *Melody
	closed atomic.Bool
}

var _ core.SoundSink = (*Synth)(nil)

// NewSynth opens the speaker. It fails when no audio device is available.
func NewSynth(cfg Config) (*Synth, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	s := &Synth{cfg: cfg, mixer: &beep.Mixer{}}
	s.melody = NewMelody(Theme, s.playNote)
	speaker.Play(s.mixer)
	return s, nil
}

// New returns a Synth, or a silent sink when the speaker cannot be opened.
func New(cfg Config, log core.Logger) core.SoundSink {
	if log == nil {
		log = core.NopLogger{}
	}
	s, err := NewSynth(cfg)
	if err != nil {
		log.Warn("audio unavailable, running silent", "err", err)
		return core.NopSound{}
	}
	return s
}

func (s *Synth) add(st beep.Streamer, vol float64) {
	if s.closed.Load() || st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(newVolume(st, vol))
	speaker.Unlock()
}

// Play queues a sound effect. Unknown events are ignored.
func (s *Synth) Play(ev core.SoundEvent) {
	s.add(effect(ev, sampleRate), s.cfg.Volume)
}

func (s *Synth) playNote(n Note) {
	s.add(tone(n.Freq, 0, n.Duration, WaveSine, sampleRate), s.cfg.MusicVolume)
}

// StartMusic starts the background loop.
func (s *Synth) StartMusic() {
	if s.closed.Load() {
		return
	}
	s.melody.Start()
}

// StopMusic stops the background loop after the current note.
func (s *Synth) StopMusic() {
	s.melody.Stop()
}

// Close stops playback and releases the speaker.
func (s *Synth) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}
	s.melody.Stop()
	speaker.Clear()
	speaker.Close()
}
