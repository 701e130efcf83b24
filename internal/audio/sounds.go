package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Note is a pitch held for a duration. Freq 0 is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Theme is the background melody loop.
var Theme = []Note{
	{523.25, 200 * time.Millisecond}, // C5
	{659.25, 200 * time.Millisecond}, // E5
	{783.99, 200 * time.Millisecond}, // G5
	{659.25, 200 * time.Millisecond}, // E5
	{587.33, 200 * time.Millisecond}, // D5
	{698.46, 200 * time.Millisecond}, // F5
	{880.00, 400 * time.Millisecond}, // A5
	{0, 400 * time.Millisecond},
}

// effect builds the streamer for a sound event, or nil for unknown events.
func effect(ev core.SoundEvent, rate beep.SampleRate) beep.Streamer {
	switch ev {
	case core.SoundJump:
		// Quick upward chirp
		return tone(400, 1600, 100*time.Millisecond, WaveSquare, rate)
	case core.SoundCollect:
		// Two-note chime, B5 then E6
		return beep.Seq(
			tone(987.77, 0, 80*time.Millisecond, WaveSine, rate),
			tone(1318.51, 0, 160*time.Millisecond, WaveSine, rate),
		)
	case core.SoundCollision:
		// Low falling buzz over noise
		return beep.Mix(
			newVolume(tone(150, -200, 300*time.Millisecond, WaveSaw, rate), 0.7),
			newVolume(tone(0, 0, 120*time.Millisecond, WaveNoise, rate), 0.3),
		)
	case core.SoundAchievement:
		// Major arpeggio C5 E5 G5 C6
		return beep.Seq(
			tone(523.25, 0, 90*time.Millisecond, WaveSine, rate),
			tone(659.25, 0, 90*time.Millisecond, WaveSine, rate),
			tone(783.99, 0, 90*time.Millisecond, WaveSine, rate),
			tone(1046.50, 0, 220*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
}
