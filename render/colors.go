package render

// Palette
var (
	RgbBackground = RGB{R: 16, G: 14, B: 28} // Deep violet night
	RgbFloor      = RGB{R: 34, G: 30, B: 52}

	RgbGuideIntact = RGB{R: 120, G: 110, B: 160}
	RgbGuideDim    = RGB{R: 60, G: 56, B: 84} // Guide shown while idle before a gesture
	RgbGesture     = RGB{R: 230, G: 230, B: 255}

	RgbHUDText   = RGB{R: 200, G: 200, B: 210}
	RgbHUDLabel  = RGB{R: 130, G: 130, B: 150}
	RgbHUDBar    = RGB{R: 28, G: 26, B: 44}
	RgbHUDPaused = RGB{R: 255, G: 200, B: 60}

	RgbTimerFull = RGB{R: 80, G: 220, B: 120}
	RgbTimerMid  = RGB{R: 240, G: 200, B: 60}
	RgbTimerLow  = RGB{R: 240, G: 70, B: 60}

	RgbSuccess = RGB{R: 120, G: 255, B: 160}
	RgbFailure = RGB{R: 255, G: 90, B: 90}
	RgbBanner  = RGB{R: 24, G: 20, B: 40}
)

// TimerColor grades the countdown bar from green through amber to red as frac falls to 0
func TimerColor(frac float64) RGB {
	switch {
	case frac <= 0:
		return RgbTimerLow
	case frac >= 1:
		return RgbTimerFull
	case frac >= 0.5:
		return Lerp(RgbTimerMid, RgbTimerFull, (frac-0.5)*2)
	default:
		return Lerp(RgbTimerLow, RgbTimerMid, frac*2)
	}
}

// AccuracyColor grades an accuracy readout from failure red to success green
func AccuracyColor(acc float64) RGB {
	if acc <= 0 {
		return RgbFailure
	}
	if acc >= 1 {
		return RgbSuccess
	}
	return Lerp(RgbFailure, RgbSuccess, acc)
}
