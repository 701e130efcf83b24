package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length tone, optionally sliding in pitch.
type oscillator struct {
	freq     float64
	slide    float64 // Hz added per second
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

// newOscillator creates a tone of the given length.
func newOscillator(freq, slide float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		slide:    slide,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.slide*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{streamer: s, attack: att, releaseStart: start, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack && e.attack > 0:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= e.releaseStart && e.release > 0:
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 or less is silent.
// math.Log2(0) is -Inf, so zero is handled by the Silent flag.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped note.
func tone(freq, slide float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, slide, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}
