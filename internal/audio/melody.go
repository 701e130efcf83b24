package audio

import (
	"sync/atomic"
	"time"
)

// Melody loops a note sequence on timers. Each note re-arms the next one
// only while the loop is still playing, so Stop is a flag flip and any
// pending timer becomes a no-op.
type Melody struct {
	notes []Note
	play  func(Note)
	after func(time.Duration, func())

	playing atomic.Bool
	gen     atomic.Uint64 // bumped on every Start; stale timers exit
}

// NewMelody creates a loop that hands each note to play.
func NewMelody(notes []Note, play func(Note)) *Melody {
	return &Melody{
		notes: notes,
		play:  play,
		after: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Start begins the loop. Starting a playing melody does nothing.
func (m *Melody) Start() {
	if len(m.notes) == 0 || !m.playing.CompareAndSwap(false, true) {
		return
	}
	gen := m.gen.Add(1)
	m.step(gen, 0)
}

// Stop ends the loop before its next note.
func (m *Melody) Stop() {
	m.playing.Store(false)
}

// Playing reports whether the loop is running.
func (m *Melody) Playing() bool {
	return m.playing.Load()
}

func (m *Melody) step(gen uint64, i int) {
	if !m.playing.Load() || m.gen.Load() != gen {
		return
	}
	n := m.notes[i]
	if n.Freq > 0 {
		m.play(n)
	}
	next := (i + 1) % len(m.notes)
	m.after(n.Duration, func() { m.step(gen, next) })
}
