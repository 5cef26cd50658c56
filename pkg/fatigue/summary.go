package fatigue

// Summary aggregates a pattern's per-shift results.
type Summary struct {
	Shifts           int       `json:"shifts"`
	MaxRisk          float64   `json:"max_risk"`
	AvgRisk          float64   `json:"avg_risk"`
	HighRiskDayCount int       `json:"high_risk_day_count"`
	WorstLevel       RiskLevel `json:"worst_level"`
	// Compliant holds when no shift reaches the critical Risk Index band.
	Compliant bool `json:"compliant"`

	MaxFatigue        float64    `json:"max_fatigue,omitempty"`
	WorstFatigueLevel *RiskLevel `json:"worst_fatigue_level,omitempty"`
}

// IsHighRisk reports whether a Risk Index level counts as a high risk day.
func IsHighRisk(l Level) bool {
	return l >= LevelElevated
}

// Summarize aggregates Risk Index results. An empty pattern is compliant.
func Summarize(results []FatigueResult) Summary {
	sum := Summary{Shifts: len(results), Compliant: true, WorstLevel: GetRiskLevel(0)}
	if len(results) == 0 {
		return sum
	}
	total := 0.0
	for _, r := range results {
		total += r.RiskIndex
		if r.RiskIndex > sum.MaxRisk {
			sum.MaxRisk = r.RiskIndex
		}
		if IsHighRisk(r.RiskLevel.Level) {
			sum.HighRiskDayCount++
		}
		if r.RiskLevel.Level > sum.WorstLevel.Level {
			sum.WorstLevel = r.RiskLevel
		}
	}
	sum.AvgRisk = total / float64(len(results))
	sum.Compliant = sum.MaxRisk < riskIndexThresholds.Critical
	return sum
}

// SummarizeCombined aggregates combined results, adding the Fatigue Index.
func SummarizeCombined(results []CombinedFatigueResult) Summary {
	risk := make([]FatigueResult, len(results))
	for i, r := range results {
		risk[i] = r.FatigueResult
	}
	sum := Summarize(risk)
	if len(results) == 0 {
		return sum
	}
	worst := results[0].FatigueLevel
	for _, r := range results {
		if r.FatigueIndex > sum.MaxFatigue {
			sum.MaxFatigue = r.FatigueIndex
		}
		if r.FatigueLevel.Level > worst.Level {
			worst = r.FatigueLevel
		}
	}
	sum.WorstFatigueLevel = &worst
	return sum
}
