package fatigue

import "math"

// Risk Index job type and breaks component.
const (
	riJobIntercept    = 0.80
	riJobSlope        = 0.04
	riBreakPenaltyPer = 0.25
)

// BreakShortfall measures how far a shift's break regime falls short of the
// continuous work policy. Zero means the policy is met. Shifts no longer than
// the continuous work limit need no break at all.
func BreakShortfall(s NormalizedShift) float64 {
	duty := s.DutyMinutes()
	limit := float64(s.ContinuousWork)
	if duty <= limit {
		return 0
	}

	hasBreaks := s.BreakFrequency > 0 && s.BreakLength > 0
	interval := duty
	if hasBreaks {
		interval = float64(s.BreakFrequency)
	}
	shortfall := math.Max(0, interval/limit-1)

	if s.BreakAfterContinuous > 0 {
		if !hasBreaks {
			shortfall++
		} else {
			shortfall += math.Max(0, 1-float64(s.BreakLength)/float64(s.BreakAfterContinuous))
		}
	}
	return shortfall
}

// JobBreaksFactor returns the Risk Index job/breaks factor for one shift.
func JobBreaksFactor(s NormalizedShift) float64 {
	base := riJobIntercept + riJobSlope*float64(s.Workload+s.Attention)
	return base * (1 + riBreakPenaltyPer*BreakShortfall(s))
}
