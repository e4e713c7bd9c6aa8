package constants

import "time"

// Audio timing
const (
	AudioSampleRate   = 48000
	AudioBufferLength = 100 * time.Millisecond

	ShatterSoundDuration  = 220 * time.Millisecond
	CastSoundDuration     = 600 * time.Millisecond
	FizzleSoundDuration   = 350 * time.Millisecond
	CriticalSoundDuration = 90 * time.Millisecond
)
