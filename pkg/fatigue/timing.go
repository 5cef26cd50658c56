package fatigue

// riTimingCurve is the time-of-day factor by start hour, 00:00 to 23:00.
// Starts in the small hours carry the most risk, mid-morning the least.
var riTimingCurve = [24]float64{
	1.20, 1.24, 1.28, 1.30, 1.28, 1.22, // 00-05
	1.12, 1.02, 0.94, 0.90, 0.88, 0.88, // 06-11
	0.89, 0.91, 0.93, 0.95, 0.97, 0.99, // 12-17
	1.01, 1.04, 1.07, 1.10, 1.13, 1.16, // 18-23
}

// TimingFactor returns the Risk Index timing factor for a start time given
// in fractional hours, e.g. 6.5 for 06:30.
func TimingFactor(startHour float64) float64 {
	return hourly(&riTimingCurve, startHour)
}
