package fatigue

// FatigueResult is the Risk Index outcome for one shift.
type FatigueResult struct {
	Day        int     `json:"day"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	DutyLength float64 `json:"duty_length"`
	// RestBefore is the rest in hours since the previous shift; zero for
	// the first shift.
	RestBefore float64 `json:"rest_before"`

	Cumulative float64   `json:"cumulative"`
	Timing     float64   `json:"timing"`
	JobBreaks  float64   `json:"job_breaks"`
	RiskIndex  float64   `json:"risk_index"`
	RiskLevel  RiskLevel `json:"risk_level"`
}

// CombinedFatigueResult carries both the Risk Index and the Fatigue Index
// for one shift.
type CombinedFatigueResult struct {
	FatigueResult

	IsNight           bool      `json:"is_night"`
	FatigueCumulative float64   `json:"fatigue_cumulative"`
	FatigueTimeOfDay  float64   `json:"fatigue_time_of_day"`
	FatigueTask       float64   `json:"fatigue_task"`
	FatigueIndex      float64   `json:"fatigue_index"`
	FatigueLevel      RiskLevel `json:"fatigue_level"`
}

// RiskIndexSequence computes the Risk Index for normalized shifts in
// ascending day order.
func RiskIndexSequence(shifts []NormalizedShift) []FatigueResult {
	cumulative := CumulativeFactors(shifts)
	rests := RestIntervals(shifts)

	out := make([]FatigueResult, len(shifts))
	for i, s := range shifts {
		r := FatigueResult{
			Day:        s.Day,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			DutyLength: s.DutyLength,
			RestBefore: rests[i],
			Cumulative: cumulative[i],
			Timing:     TimingFactor(s.StartHour),
			JobBreaks:  JobBreaksFactor(s),
		}
		r.RiskIndex = r.Cumulative * r.Timing * r.JobBreaks
		r.RiskLevel = GetRiskLevel(r.RiskIndex)
		out[i] = r
	}
	return out
}

// CalculateSequence normalizes shifts and returns their Risk Index results
// in ascending day order.
func CalculateSequence(shifts []ShiftDefinition, params *FatigueParameters) ([]FatigueResult, error) {
	normalized, err := Normalize(shifts, params)
	if err != nil {
		return nil, err
	}
	return RiskIndexSequence(normalized), nil
}

// CalculateCombinedSequence normalizes shifts once and computes both indices
// from the same sequence.
func CalculateCombinedSequence(shifts []ShiftDefinition, params *FatigueParameters) ([]CombinedFatigueResult, error) {
	normalized, err := Normalize(shifts, params)
	if err != nil {
		return nil, err
	}
	risk := RiskIndexSequence(normalized)
	fgi := FatigueIndexSequence(normalized)

	out := make([]CombinedFatigueResult, len(normalized))
	for i, s := range normalized {
		out[i] = CombinedFatigueResult{
			FatigueResult:     risk[i],
			IsNight:           s.IsNight,
			FatigueCumulative: fgi[i].Cumulative,
			FatigueTimeOfDay:  fgi[i].TimeOfDay,
			FatigueTask:       fgi[i].Task,
			FatigueIndex:      fgi[i].Index,
			FatigueLevel:      GetFatigueLevel(fgi[i].Index, s.IsNight),
		}
	}
	return out, nil
}
