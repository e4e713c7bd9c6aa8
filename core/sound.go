package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShatter  SoundType = iota // Guide segment breaks
	SoundCast                      // Successful cast chime
	SoundFizzle                    // Failed cast
	SoundCritical                  // Perfect-tier sample ping
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"shatter", "cast", "fizzle", "critical"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
