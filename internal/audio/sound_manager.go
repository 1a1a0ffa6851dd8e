package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"flapterm/internal/core"
)

// sampleRate is the fixed output rate for all synthesized effects
const sampleRate = beep.SampleRate(44100)

const defaultVolume = 0.6

// SoundManager owns the speaker and mixes effects into it. All Play
// methods are safe for concurrent use and no-ops until Initialize
// succeeds, so callers never need to branch on audio availability.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with the default volume.
// The speaker is not opened until Initialize is called.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize opens the audio device and starts the mixer stream.
// Returns an error when no output device is available; the manager
// stays silent in that case.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all playing effects
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// SetVolume adjusts playback volume, clamped to [0, 1]
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	sm.volume = vol
}

// play mixes a finite streamer into the running output. The mixer
// drains finished streamers on its own.
func (sm *SoundManager) play(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayFlap plays the surge blip
func (sm *SoundManager) PlayFlap() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.play(CreateFlapSound(sampleRate, sm.volume))
}

// PlayScore plays the pair-passed chime
func (sm *SoundManager) PlayScore() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.play(CreateScoreSound(sampleRate, sm.volume))
}

// PlayCrash plays the end-of-run buzz
func (sm *SoundManager) PlayCrash() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.play(CreateCrashSound(sampleRate, sm.volume))
}

// PlayEvent plays the effect matching a simulation event.
// Unknown events are ignored.
func (sm *SoundManager) PlayEvent(e core.Event) {
	switch e {
	case core.EventFlap:
		sm.PlayFlap()
	case core.EventScore:
		sm.PlayScore()
	case core.EventCrash:
		sm.PlayCrash()
	}
}
