package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/runecast/constants"
)

// RawDamage evaluates min + (max-min) * accuracy^2.5 * timeFactor without rounding
func RawDamage(minDamage, maxDamage int, accuracy, timeFactor float64) float64 {
	if accuracy < 0 {
		accuracy = 0
	}
	spread := float64(maxDamage - minDamage)
	return float64(minDamage) + spread*math.Pow(accuracy, constants.DamageExponent)*timeFactor
}

// Damage is RawDamage rounded to the nearest integer
func Damage(minDamage, maxDamage int, accuracy, timeFactor float64) int {
	return int(math.Round(RawDamage(minDamage, maxDamage, accuracy, timeFactor)))
}

// PreviewDamage is the live estimate shown while casting; no time penalty applies
func PreviewDamage(minDamage, maxDamage int, accuracy float64) int {
	return Damage(minDamage, maxDamage, accuracy, 1)
}

// TimeFactor is max(0.15, 1 - 0.15 * seconds)
func TimeFactor(elapsed time.Duration) float64 {
	f := 1 - elapsed.Seconds()*constants.TimePenaltyPerSecond
	if f < constants.TimeFactorFloor {
		return constants.TimeFactorFloor
	}
	if f > 1 {
		return 1
	}
	return f
}

// IsSuccess reports whether the final mean accuracy clears the success threshold
func IsSuccess(meanAccuracy float64) bool {
	return meanAccuracy >= constants.SuccessAccuracyThresh
}
