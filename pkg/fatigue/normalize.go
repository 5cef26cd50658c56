package fatigue

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const hoursPerDay = 24.0

// Night time is the 23:00-06:00 window; a shift counts as a night shift once
// at least NightMinHours of its duty fall inside it.
const (
	nightWindowStart = 23.0
	nightWindowEnd   = 6.0
	NightMinHours    = 3.0
)

// NormalizedShift is a shift with every optional field resolved. Nothing
// downstream of Normalize reads a ShiftDefinition.
type NormalizedShift struct {
	Day       int
	StartTime string
	EndTime   string

	StartHour  float64
	EndHour    float64
	DutyLength float64 // hours, excluding commute

	// Start is the absolute start in hours from day 0, 00:00.
	Start float64

	CommuteIn            int
	CommuteOut           int
	Workload             int
	Attention            int
	BreakFrequency       int
	BreakLength          int
	ContinuousWork       int
	BreakAfterContinuous int

	IsNight bool
}

// End is the absolute end of duty in hours from day 0.
func (n NormalizedShift) End() float64 {
	return n.Start + n.DutyLength
}

// DutyWithCommute is the duty length plus both commute legs, in hours.
func (n NormalizedShift) DutyWithCommute() float64 {
	return n.DutyLength + float64(n.CommuteIn+n.CommuteOut)/60
}

// DutyMinutes is the working time in minutes.
func (n NormalizedShift) DutyMinutes() float64 {
	return n.DutyLength * 60
}

// ParseTimeToHours converts a 24h "HH:MM" wall clock time to fractional hours.
func ParseTimeToHours(value string) (float64, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: want HH:MM", value)
	}
	return float64(t.Hour()) + float64(t.Minute())/60, nil
}

// CalculateDutyLength returns the hours between start and end. An end at or
// before the start wraps into the next day.
func CalculateDutyLength(startHour, endHour float64) float64 {
	if endHour <= startHour {
		endHour += hoursPerDay
	}
	return endHour - startHour
}

// nightHours returns how much of the span [start, start+duty) falls inside
// the night window, start being a time of day.
func nightHours(startHour, duty float64) float64 {
	end := startHour + duty
	total := 0.0
	// The span lies within [0, 48); windows open at 23:00 the previous day,
	// 23:00 today and 23:00 tomorrow.
	for k := 0; k < 3; k++ {
		ws := float64(k)*hoursPerDay - (hoursPerDay - nightWindowStart)
		we := float64(k)*hoursPerDay + nightWindowEnd
		overlap := math.Min(end, we) - math.Max(startHour, ws)
		if overlap > 0 {
			total += overlap
		}
	}
	return total
}

// IsNightShift reports whether a shift starting at startHour and lasting
// duty hours is a night shift.
func IsNightShift(startHour, duty float64) bool {
	return nightHours(startHour, duty) >= NightMinHours
}

// ValidateParameters checks the pattern-wide parameters. A nil value is valid.
func ValidateParameters(p *FatigueParameters) error {
	if p == nil {
		return nil
	}
	if err := checkDemand(p.Workload, "workload"); err != nil {
		return err
	}
	if err := checkDemand(p.Attention, "attention"); err != nil {
		return err
	}
	nonNegative := []struct {
		field string
		v     *int
	}{
		{"commute_time", p.CommuteTime},
		{"break_frequency", p.BreakFrequency},
		{"break_length", p.BreakLength},
		{"break_after_continuous", p.BreakAfterContinuous},
	}
	for _, f := range nonNegative {
		if f.v != nil && *f.v < 0 {
			return paramErr(f.field, "%d minutes is negative", *f.v)
		}
	}
	if p.ContinuousWork != nil && *p.ContinuousWork <= 0 {
		return paramErr("continuous_work", "%d minutes must be positive", *p.ContinuousWork)
	}
	return nil
}

func checkDemand(v *int, field string) error {
	if v != nil && (*v < MinDemand || *v > MaxDemand) {
		return paramErr(field, "%d not in [%d, %d]", *v, MinDemand, MaxDemand)
	}
	return nil
}

// Normalize validates shifts against params and resolves every field. A
// shift may start the moment the previous one ends but not before. It is
// atomic: on the first failure no shifts are returned. The input slice is
// never modified.
func Normalize(shifts []ShiftDefinition, params *FatigueParameters) ([]NormalizedShift, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}

	ordered := make([]ShiftDefinition, len(shifts))
	copy(ordered, shifts)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Day < ordered[j].Day })

	out := make([]NormalizedShift, 0, len(ordered))
	for i, s := range ordered {
		if i > 0 && ordered[i-1].Day == s.Day {
			return nil, shiftErr(ErrDuplicateDay, s.Day, "day", "day %d appears more than once", s.Day)
		}
		n, err := normalizeShift(s, params)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			if prev := out[i-1]; n.Start < prev.End() {
				return nil, shiftErr(ErrInvalidShiftDuration, s.Day, "start_time",
					"starts %.2fh before day %d duty ends", prev.End()-n.Start, prev.Day)
			}
		}
		out = append(out, n)
	}
	return out, nil
}

func normalizeShift(s ShiftDefinition, p *FatigueParameters) (NormalizedShift, error) {
	if s.StartTime == "" {
		return NormalizedShift{}, shiftErr(ErrMissingRequiredField, s.Day, "start_time", "no start time")
	}
	if s.EndTime == "" {
		return NormalizedShift{}, shiftErr(ErrMissingRequiredField, s.Day, "end_time", "no end time")
	}
	startHour, err := ParseTimeToHours(s.StartTime)
	if err != nil {
		return NormalizedShift{}, shiftErr(ErrMissingRequiredField, s.Day, "start_time", "%v", err)
	}
	endHour, err := ParseTimeToHours(s.EndTime)
	if err != nil {
		return NormalizedShift{}, shiftErr(ErrMissingRequiredField, s.Day, "end_time", "%v", err)
	}

	duty := CalculateDutyLength(startHour, endHour)
	if duty <= 0 {
		return NormalizedShift{}, shiftErr(ErrInvalidShiftDuration, s.Day, "end_time", "duty length %.2fh", duty)
	}

	n := NormalizedShift{
		Day:                  s.Day,
		StartTime:            s.StartTime,
		EndTime:              s.EndTime,
		StartHour:            startHour,
		EndHour:              endHour,
		DutyLength:           duty,
		Start:                float64(s.Day)*hoursPerDay + startHour,
		CommuteIn:            ResolveCommuteIn(s, p),
		CommuteOut:           ResolveCommuteOut(s, p),
		Workload:             ResolveWorkload(s, p),
		Attention:            ResolveAttention(s, p),
		BreakFrequency:       ResolveBreakFrequency(s, p),
		BreakLength:          ResolveBreakLength(s, p),
		ContinuousWork:       ResolveContinuousWork(p),
		BreakAfterContinuous: ResolveBreakAfterContinuous(p),
		IsNight:              IsNightShift(startHour, duty),
	}

	if n.Workload < MinDemand || n.Workload > MaxDemand {
		return NormalizedShift{}, shiftErr(ErrOutOfRangeParameter, s.Day, "workload", "%d not in [%d, %d]", n.Workload, MinDemand, MaxDemand)
	}
	if n.Attention < MinDemand || n.Attention > MaxDemand {
		return NormalizedShift{}, shiftErr(ErrOutOfRangeParameter, s.Day, "attention", "%d not in [%d, %d]", n.Attention, MinDemand, MaxDemand)
	}
	minutes := []struct {
		field string
		v     int
	}{
		{"commute_in", n.CommuteIn},
		{"commute_out", n.CommuteOut},
		{"break_frequency", n.BreakFrequency},
		{"break_length", n.BreakLength},
	}
	for _, m := range minutes {
		if m.v < 0 {
			return NormalizedShift{}, shiftErr(ErrOutOfRangeParameter, s.Day, m.field, "%d minutes is negative", m.v)
		}
	}
	return n, nil
}
