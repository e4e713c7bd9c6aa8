package constants

// Accuracy and scoring
const (
	// MaxDistanceThreshold is the pixel distance at which per-sample accuracy reaches 0
	MaxDistanceThreshold = 80.0

	// Proximity reward bands (pixel distance to path)
	ProximityBandPerfect = 10.0
	ProximityBandClose   = 25.0
	ProximityBandNear    = 50.0

	RewardPerfect = 10
	RewardClose   = 5
	RewardNear    = 2
	PenaltyFar    = -3
)

// Accuracy tiers for visual feedback
const (
	AccuracyPerfect  = 0.95
	AccuracyCritical = 0.9
	AccuracyGood     = 0.7
)

// Damage formula
const (
	DamageExponent        = 2.5
	TimePenaltyPerSecond  = 0.15
	TimeFactorFloor       = 0.15
	SuccessAccuracyThresh = 0.3
)

// Guide segments
const (
	// GuideSegmentLength is the target pixel length of one breakable guide segment
	GuideSegmentLength = 15.0

	// SegmentBreakDistance is the max pixel distance from a segment midpoint that can break it
	SegmentBreakDistance = 12.0

	// SegmentBreakAccuracy is the minimum sample accuracy that can break a segment
	SegmentBreakAccuracy = AccuracyCritical
)
