package fatigue

// Risk Index cumulative component.
const (
	riRecoveryHours = 24.0
	riCarryHours    = 2.0
	riCarryWeight   = 0.5
)

// riDutyCurve maps duty-plus-commute hours to the baseline fatigue factor.
// A 12 hour door-to-door day is the reference point of 1.0.
// TODO: swap this and the other coefficient tables for the published RR446 values.
var riDutyCurve = []curvePoint{
	{0, 0.70},
	{4, 0.74},
	{8, 0.82},
	{10, 0.90},
	{12, 1.00},
	{14, 1.12},
	{16, 1.26},
}

// DutyBaseline returns the duty-length baseline for a door-to-door span.
func DutyBaseline(hours float64) float64 {
	return interpolate(riDutyCurve, hours)
}

// CumulativeFactors runs the cumulative recurrence over shifts, which must
// already be in ascending day order. Entry i depends on entry i-1 and the
// rest between them; the first shift, and any shift after 24 hours of rest,
// starts from its own baseline alone.
func CumulativeFactors(shifts []NormalizedShift) []float64 {
	out := make([]float64, len(shifts))
	for i, s := range shifts {
		base := DutyBaseline(s.DutyWithCommute())
		if i == 0 {
			out[i] = base
			continue
		}
		f := carryFraction(restBefore(shifts[i-1], s), riCarryHours, riRecoveryHours)
		out[i] = base + f*riCarryWeight*out[i-1]
	}
	return out
}
