package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-duration raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewTone creates a finite oscillator streamer.
func NewTone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
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
			return i, false
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
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping so tones start and stop without
// clicks.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples && e.releaseSamples > 0 {
			vol = float64(remaining) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a volume effect.
// math.Log2(0) is -Inf, so zero volume is handled by muting instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one step of the background melody.
type note struct {
	freq float64 // 0 means rest
	dur  time.Duration
}

// melodyGenerator cycles a note table forever, shaping each note with a
// short release ramp so the loop stays click free.
type melodyGenerator struct {
	rate  beep.SampleRate
	notes []note

	index   int
	phase   float64
	pos     int
	noteLen int
}

// NewMelody creates an endless looping melody streamer.
func NewMelody(rate beep.SampleRate, notes []note) beep.Streamer {
	m := &melodyGenerator{rate: rate, notes: notes}
	m.noteLen = rate.N(notes[0].dur)
	return m
}

func (m *melodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if m.pos >= m.noteLen {
			m.index = (m.index + 1) % len(m.notes)
			m.noteLen = m.rate.N(m.notes[m.index].dur)
			m.pos = 0
			m.phase = 0
		}

		cur := m.notes[m.index]
		var val float64
		if cur.freq > 0 {
			val = math.Sin(2 * math.Pi * m.phase)
			m.phase += cur.freq / float64(m.rate)
			m.phase = m.phase - math.Floor(m.phase)
		}

		// Fade the tail of each note.
		if remaining := m.noteLen - m.pos; remaining < m.rate.N(10*time.Millisecond) {
			val *= float64(remaining) / float64(m.rate.N(10*time.Millisecond))
		}

		samples[i][0] = val
		samples[i][1] = val
		m.pos++
	}
	return len(samples), true
}

func (m *melodyGenerator) Err() error { return nil }
