package fatigue

import "math"

// Fatigue Index constants. Kept apart from the Risk Index ones; the two
// models only share the normalized shifts.
const (
	fgiDutyRate      = 0.75
	fgiRecoveryHours = 24.0
	fgiCarryHours    = 3.0
	fgiCarryWeight   = 0.4

	fgiDemandRate  = 0.75
	fgiBreakPoints = 4.0

	fgiWeightCumulative = 1.0
	fgiWeightTimeOfDay  = 1.5
	fgiWeightTask       = 1.0

	fgiFloor   = 0.0
	fgiCeiling = 100.0
)

// fgiTimeOfDayCurve holds time-of-day points by start hour, 00:00 to 23:00.
var fgiTimeOfDayCurve = [24]float64{
	10, 11, 12, 12.5, 12, 10, // 00-05
	7, 4.5, 3, 2, 1.5, 1.5, // 06-11
	2, 2.5, 3, 3.5, 4, 5, // 12-17
	6, 7, 8, 8.5, 9, 9.5, // 18-23
}

// FatigueIndexPart is one shift's Fatigue Index breakdown. The subfactors
// are weighted contributions, so before bounding they sum to Index.
type FatigueIndexPart struct {
	Cumulative float64
	TimeOfDay  float64
	Task       float64
	Index      float64
}

// fatigueCumulativePoints runs the Fatigue Index recurrence, unweighted.
func fatigueCumulativePoints(shifts []NormalizedShift) []float64 {
	out := make([]float64, len(shifts))
	for i, s := range shifts {
		points := fgiDutyRate * s.DutyWithCommute()
		if i > 0 {
			f := carryFraction(restBefore(shifts[i-1], s), fgiCarryHours, fgiRecoveryHours)
			points += f * fgiCarryWeight * out[i-1]
		}
		out[i] = points
	}
	return out
}

// TimeOfDayPoints returns the unweighted Fatigue Index time-of-day points.
func TimeOfDayPoints(startHour float64) float64 {
	return hourly(&fgiTimeOfDayCurve, startHour)
}

// TaskPoints returns the unweighted Fatigue Index task points.
func TaskPoints(s NormalizedShift) float64 {
	return fgiDemandRate*float64(s.Workload+s.Attention) + fgiBreakPoints*BreakShortfall(s)
}

// FatigueIndexSequence computes the Fatigue Index for shifts in ascending
// day order.
func FatigueIndexSequence(shifts []NormalizedShift) []FatigueIndexPart {
	cum := fatigueCumulativePoints(shifts)
	out := make([]FatigueIndexPart, len(shifts))
	for i, s := range shifts {
		p := FatigueIndexPart{
			Cumulative: fgiWeightCumulative * cum[i],
			TimeOfDay:  fgiWeightTimeOfDay * TimeOfDayPoints(s.StartHour),
			Task:       fgiWeightTask * TaskPoints(s),
		}
		p.Index = math.Min(fgiCeiling, math.Max(fgiFloor, p.Cumulative+p.TimeOfDay+p.Task))
		out[i] = p
	}
	return out
}
