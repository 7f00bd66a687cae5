// Package audio plays short synthesized sound effects for game events.
// Audio is optional: when no output device is available the manager stays
// silent and every Play call is a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies an effect.
type Sound int

const (
	SoundFlap Sound = iota
	SoundScore
	SoundRecord
	SoundGameOver
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundRecord:
		return "record"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Effect builds a fresh streamer for a sound.
func Effect(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch s {
	case SoundFlap:
		return CreateFlapSound(rate, vol)
	case SoundScore:
		return CreateScoreSound(rate, vol)
	case SoundRecord:
		return CreateRecordSound(rate, vol)
	case SoundGameOver:
		return CreateGameOverSound(rate, vol)
	default:
		return nil
	}
}

// SoundManager mixes effects into the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager with the given master volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
}

// Initialize opens the audio device. On error the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds will actually be heard.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// ToggleMute flips the mute flag and returns the new state.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Play queues an effect.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	st := Effect(s, sampleRate, sm.volume)
	if st == nil {
		return
	}

	// The speaker goroutine reads the mixer under its own lock.
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
