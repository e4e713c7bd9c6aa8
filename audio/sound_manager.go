package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/core"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays one-shot cast effects through a shared mixer
// All methods are safe to call before Initialize or after a failed init
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	seed        int64
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		seed:  1,
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferLength))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker close; an empty mixer produces silence
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Initialized reports whether a device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a one-shot effect
func (sm *SoundManager) Play(st core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := sm.streamer(st)
	if s == nil {
		log.Printf("audio: no generator for %s", st)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// streamer builds a bounded streamer for a sound type, nil when unknown
func (sm *SoundManager) streamer(st core.SoundType) beep.Streamer {
	switch st {
	case core.SoundShatter:
		sm.seed++
		return beep.Take(sampleRate.N(constants.ShatterSoundDuration), NewShatterGenerator(sampleRate, sm.seed))
	case core.SoundCast:
		return beep.Take(sampleRate.N(constants.CastSoundDuration), NewChimeGenerator(sampleRate))
	case core.SoundFizzle:
		return beep.Take(sampleRate.N(constants.FizzleSoundDuration), NewBuzzGenerator(sampleRate, 110))
	case core.SoundCritical:
		return beep.Take(sampleRate.N(constants.CriticalSoundDuration), NewPingGenerator(sampleRate, 1760))
	}
	return nil
}
