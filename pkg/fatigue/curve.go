package fatigue

import "math"

type curvePoint struct {
	x, y float64
}

// interpolate evaluates a piecewise-linear curve. Below the first point the
// first value holds; beyond the last point the last segment's slope continues.
func interpolate(points []curvePoint, x float64) float64 {
	if x <= points[0].x {
		return points[0].y
	}
	for i := 1; i < len(points); i++ {
		if x <= points[i].x {
			a, b := points[i-1], points[i]
			return a.y + (x-a.x)*(b.y-a.y)/(b.x-a.x)
		}
	}
	a, b := points[len(points)-2], points[len(points)-1]
	return b.y + (x-b.x)*(b.y-a.y)/(b.x-a.x)
}

// hourly evaluates a 24-entry table indexed by whole hour, interpolating
// linearly within the hour and wrapping 23:00 back to 00:00.
func hourly(table *[24]float64, hour float64) float64 {
	hour = math.Mod(hour, hoursPerDay)
	if hour < 0 {
		hour += hoursPerDay
	}
	h := int(hour)
	frac := hour - float64(h)
	if frac == 0 {
		return table[h]
	}
	next := table[(h+1)%24]
	return table[h] + frac*(next-table[h])
}

// restBefore is the off-duty gap in hours between prev and cur, measured
// from prev's end plus its commute home to cur's start minus its commute in.
func restBefore(prev, cur NormalizedShift) float64 {
	leftHome := cur.Start - float64(cur.CommuteIn)/60
	gotHome := prev.End() + float64(prev.CommuteOut)/60
	return leftHome - gotHome
}

// carryFraction is the share of the previous state carried into the next
// shift: an inverse of rest hours, capped at 1 and zero from recovery onward.
func carryFraction(rest, carryHours, recoveryHours float64) float64 {
	if rest >= recoveryHours {
		return 0
	}
	if rest <= carryHours {
		return 1
	}
	return carryHours / rest
}

// RestIntervals returns the rest before each shift in hours. The first
// entry is always zero.
func RestIntervals(shifts []NormalizedShift) []float64 {
	rests := make([]float64, len(shifts))
	for i := 1; i < len(shifts); i++ {
		rests[i] = restBefore(shifts[i-1], shifts[i])
	}
	return rests
}
