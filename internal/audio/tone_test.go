package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams everything s produces, returning the sample count and the
// peak absolute amplitude.
func drain(s beep.Streamer, max int) (int, float64) {
	var total int
	var peak float64
	buf := make([][2]float64, 512)
	for total < max {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				if v := buf[i][c]; v > peak {
					peak = v
				} else if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestToneDuration(t *testing.T) {
	dur := 50 * time.Millisecond
	tone := NewTone(440, dur, WaveSine, sampleRate)

	n, peak := drain(tone, sampleRate.N(time.Second))
	if want := sampleRate.N(dur); n != want {
		t.Errorf("tone produced %d samples, want %d", n, want)
	}
	if peak > 1.0 {
		t.Errorf("tone peak %v exceeds full scale", peak)
	}
	if peak < 0.5 {
		t.Errorf("tone peak %v suspiciously quiet", peak)
	}
}

func TestEnvelopeRampsToSilence(t *testing.T) {
	dur := 40 * time.Millisecond
	tone := NewTone(440, dur, WaveSquare, sampleRate)
	shaped := NewEnvelope(tone, dur, 5*time.Millisecond, 20*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(dur))
	n, _ := shaped.Stream(buf)
	if n == 0 {
		t.Fatal("envelope produced no samples")
	}

	// First sample sits at the bottom of the attack ramp.
	if v := buf[0][0]; v > 0.01 || v < -0.01 {
		t.Errorf("attack start amplitude %v, want near zero", v)
	}
	// Last produced sample sits at the bottom of the release ramp.
	if v := buf[n-1][0]; v > 0.01 || v < -0.01 {
		t.Errorf("release end amplitude %v, want near zero", v)
	}
}

func TestMelodyLoopsForever(t *testing.T) {
	m := NewMelody(sampleRate, []note{
		{440, 10 * time.Millisecond},
		{0, 10 * time.Millisecond},
	})

	// Several times the table length; the generator must keep producing.
	want := sampleRate.N(200 * time.Millisecond)
	n, peak := drain(m, want)
	if n != want {
		t.Errorf("melody stopped after %d samples, want %d", n, want)
	}
	if peak == 0 {
		t.Error("melody produced only silence")
	}
	if peak > 1.0 {
		t.Errorf("melody peak %v exceeds full scale", peak)
	}
}

func TestManagerSilentBeforeInit(t *testing.T) {
	m := NewManager()

	// None of these may touch the speaker before Init.
	m.Pulse()
	m.Chime()
	m.StartMusic()
	if m.ToggleMusic() {
		t.Error("music reported playing without Init")
	}
	if m.MusicPlaying() {
		t.Error("MusicPlaying() true without Init")
	}
	m.Close()
}
