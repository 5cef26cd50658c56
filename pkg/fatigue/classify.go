package fatigue

import (
	"fmt"
	"math"
)

// Level is an ordered risk band.
type Level int

const (
	LevelLow Level = iota
	LevelModerate
	LevelElevated
	LevelCritical
)

var levelNames = [...]string{"low", "moderate", "elevated", "critical"}

var levelLabels = [...]string{
	"Low risk",
	"Moderate risk",
	"Elevated risk - review controls",
	"Critical risk - do not authorize",
}

func (l Level) String() string {
	if l < LevelLow || l > LevelCritical {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Label is the human readable description of the band.
func (l Level) Label() string {
	if l < LevelLow || l > LevelCritical {
		return l.String()
	}
	return levelLabels[l]
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	for i, n := range levelNames {
		if n == string(b) {
			*l = Level(i)
			return nil
		}
	}
	return fmt.Errorf("unknown risk level %q", string(b))
}

// RiskLevel is a classification outcome.
type RiskLevel struct {
	Level Level  `json:"level"`
	Label string `json:"label"`
}

func (r RiskLevel) String() string {
	return r.Level.String()
}

// Thresholds are the lower bounds of the moderate, elevated and critical
// bands. A value equal to a bound belongs to the higher band.
type Thresholds struct {
	Moderate float64 `json:"moderate"`
	Elevated float64 `json:"elevated"`
	Critical float64 `json:"critical"`
}

var (
	riskIndexThresholds    = Thresholds{Moderate: 1.0, Elevated: 1.1, Critical: 1.2}
	fatigueDayThresholds   = Thresholds{Moderate: 17.5, Elevated: 26.25, Critical: 35}
	fatigueNightThresholds = Thresholds{Moderate: 22.5, Elevated: 33.75, Critical: 45}
)

// RiskIndexThresholds returns the Risk Index bands.
func RiskIndexThresholds() Thresholds { return riskIndexThresholds }

// FatigueIndexThresholds returns the Fatigue Index bands for day or night work.
func FatigueIndexThresholds(isNight bool) Thresholds {
	if isNight {
		return fatigueNightThresholds
	}
	return fatigueDayThresholds
}

// Classify maps a value onto t. NaN and infinities cannot be placed on a
// scale and classify as critical.
func (t Thresholds) Classify(value float64) RiskLevel {
	l := LevelLow
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		l = LevelCritical
	case value >= t.Critical:
		l = LevelCritical
	case value >= t.Elevated:
		l = LevelElevated
	case value >= t.Moderate:
		l = LevelModerate
	}
	return RiskLevel{Level: l, Label: l.Label()}
}

// GetRiskLevel classifies a Risk Index value. Day and night share bands.
func GetRiskLevel(value float64) RiskLevel {
	return riskIndexThresholds.Classify(value)
}

// GetFatigueLevel classifies a Fatigue Index value; night work is held to
// the higher night bands.
func GetFatigueLevel(value float64, isNight bool) RiskLevel {
	return FatigueIndexThresholds(isNight).Classify(value)
}
