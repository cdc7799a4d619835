// Package audio synthesizes the game's feedback tones and background
// music through the speaker. A low buzz stands in for the vibration motor
// of the handheld build this game descends from.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and mixes feedback tones over the optional
// background melody. The zero value is usable and silently drops all
// playback until Init succeeds, so callers never need nil checks.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	musicCtrl   *beep.Ctrl
	initialized bool
}

// NewManager creates a sound manager. Call Init before playing.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops all playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.musicCtrl = nil
	m.initialized = false
}

// play adds a one-shot streamer to the live mixer.
func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Pulse plays the short low buzz used for wall, ceiling, and world-edge
// bumps.
func (m *Manager) Pulse() {
	const dur = 60 * time.Millisecond
	tone := NewTone(150, dur, WaveSquare, sampleRate)
	shaped := NewEnvelope(tone, dur, 2*time.Millisecond, 30*time.Millisecond, sampleRate)
	m.play(newVolume(shaped, 0.35))
}

// Chime plays the pickup ding.
func (m *Manager) Chime() {
	const dur = 120 * time.Millisecond
	tone := NewTone(1320, dur, WaveSine, sampleRate)
	shaped := NewEnvelope(tone, dur, 2*time.Millisecond, 80*time.Millisecond, sampleRate)
	m.play(newVolume(shaped, 0.3))
}

// backgroundMelody is a short eight-bar chiptune loop.
var backgroundMelody = []note{
	{523.25, 250 * time.Millisecond}, // C5
	{659.25, 250 * time.Millisecond}, // E5
	{783.99, 250 * time.Millisecond}, // G5
	{659.25, 250 * time.Millisecond}, // E5
	{587.33, 250 * time.Millisecond}, // D5
	{698.46, 250 * time.Millisecond}, // F5
	{659.25, 250 * time.Millisecond}, // E5
	{0, 250 * time.Millisecond},
	{523.25, 250 * time.Millisecond}, // C5
	{659.25, 250 * time.Millisecond}, // E5
	{880.00, 250 * time.Millisecond}, // A5
	{783.99, 250 * time.Millisecond}, // G5
	{659.25, 500 * time.Millisecond}, // E5
	{587.33, 250 * time.Millisecond}, // D5
	{523.25, 500 * time.Millisecond}, // C5
	{0, 500 * time.Millisecond},
}

// StartMusic begins the looping background melody. It is a no-op when the
// music is already running.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.musicCtrl != nil {
		return
	}

	loop := NewMelody(sampleRate, backgroundMelody)
	ctrl := &beep.Ctrl{Streamer: newVolume(loop, 0.15)}
	m.musicCtrl = ctrl

	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()
}

// ToggleMusic pauses or resumes the background melody and reports whether
// it is now playing.
func (m *Manager) ToggleMusic() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.musicCtrl == nil {
		return false
	}

	speaker.Lock()
	m.musicCtrl.Paused = !m.musicCtrl.Paused
	playing := !m.musicCtrl.Paused
	speaker.Unlock()
	return playing
}

// MusicPlaying reports whether the background melody is audible.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.musicCtrl == nil {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	return !m.musicCtrl.Paused
}
