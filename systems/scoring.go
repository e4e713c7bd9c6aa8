package systems

import (
	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/vmath"
)

// Accuracy maps a pixel distance to the reference path onto [0,1] with a linear falloff
func Accuracy(distance float64) float64 {
	return vmath.Clamp(1-distance/constants.MaxDistanceThreshold, 0, 1)
}

// ProximityReward returns the discrete score delta for a sample at the given distance
func ProximityReward(distance float64) int {
	switch {
	case distance < constants.ProximityBandPerfect:
		return constants.RewardPerfect
	case distance < constants.ProximityBandClose:
		return constants.RewardClose
	case distance < constants.ProximityBandNear:
		return constants.RewardNear
	default:
		return constants.PenaltyFar
	}
}

// SampleScore is the outcome of scoring one gesture sample
type SampleScore struct {
	Distance float64
	Accuracy float64
	Reward   int
}

// Scorer accumulates per-sample accuracy (for damage) and proximity score (for feedback)
type Scorer struct {
	samples []float64
	sum     float64
	score   int
}

// NewScorer creates an empty scorer
func NewScorer() *Scorer {
	return &Scorer{samples: make([]float64, 0, 256)}
}

// Reset clears all samples and the score, keeping allocated capacity
func (s *Scorer) Reset() {
	s.samples = s.samples[:0]
	s.sum = 0
	s.score = 0
}

// Record scores a sample at the given pixel distance to the path
func (s *Scorer) Record(distance float64) SampleScore {
	acc := Accuracy(distance)
	s.samples = append(s.samples, acc)
	s.sum += acc

	reward := ProximityReward(distance)
	s.score += reward
	if s.score < 0 {
		s.score = 0
	}

	return SampleScore{Distance: distance, Accuracy: acc, Reward: reward}
}

// Mean returns the running accuracy average, 0 with no samples
func (s *Scorer) Mean() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	return s.sum / float64(len(s.samples))
}

// Score returns the accumulated proximity score, never negative
func (s *Scorer) Score() int {
	return s.score
}

// Count returns the number of recorded samples
func (s *Scorer) Count() int {
	return len(s.samples)
}

// Samples returns a copy of the per-sample accuracy values in order
func (s *Scorer) Samples() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)
	return out
}
