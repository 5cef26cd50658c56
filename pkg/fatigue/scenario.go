package fatigue

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// RolePreset is a named workload/attention baseline for a job function.
type RolePreset struct {
	Name      string `json:"name" yaml:"name"`
	Workload  int    `json:"workload" yaml:"workload"`
	Attention int    `json:"attention" yaml:"attention"`
}

// RoleComparisonResult is one role's outcome over a pattern.
type RoleComparisonResult struct {
	Role             string          `json:"role"`
	Workload         int             `json:"workload"`
	Attention        int             `json:"attention"`
	MaxRisk          float64         `json:"max_risk"`
	AvgRisk          float64         `json:"avg_risk"`
	HighRiskDayCount int             `json:"high_risk_day_count"`
	IsCompliant      bool            `json:"is_compliant"`
	Results          []FatigueResult `json:"results"`
}

var defaultRolePresets = []RolePreset{
	{Name: "Track Worker", Workload: 4, Attention: 3},
	{Name: "Lookout", Workload: 2, Attention: 5},
	{Name: "Controller of Site Safety", Workload: 3, Attention: 5},
	{Name: "Machine Operator", Workload: 3, Attention: 4},
	{Name: "Signalling Technician", Workload: 4, Attention: 4},
	{Name: "Site Supervisor", Workload: 2, Attention: 4},
}

// DefaultRolePresets returns a copy of the built-in role presets.
func DefaultRolePresets() []RolePreset {
	return slices.Clone(defaultRolePresets)
}

// ValidateRoles checks every preset's demand ratings.
func ValidateRoles(roles []RolePreset) error {
	for i, r := range roles {
		if r.Workload < MinDemand || r.Workload > MaxDemand {
			return paramErr(fmt.Sprintf("roles[%d].workload", i), "%q: %d not in [%d, %d]", r.Name, r.Workload, MinDemand, MaxDemand)
		}
		if r.Attention < MinDemand || r.Attention > MaxDemand {
			return paramErr(fmt.Sprintf("roles[%d].attention", i), "%q: %d not in [%d, %d]", r.Name, r.Attention, MinDemand, MaxDemand)
		}
	}
	return nil
}

// WithDemand returns copies of shifts with workload and attention replaced
// on every shift. The input is left untouched.
func WithDemand(shifts []ShiftDefinition, workload, attention int) []ShiftDefinition {
	out := make([]ShiftDefinition, len(shifts))
	for i, s := range shifts {
		c := s.Clone()
		c.Workload = Int(workload)
		c.Attention = Int(attention)
		out[i] = c
	}
	return out
}

// EvaluateWorstCase runs the pattern with maximum workload and attention on
// every shift, everything else unchanged.
func EvaluateWorstCase(shifts []ShiftDefinition, params *FatigueParameters) ([]FatigueResult, error) {
	return CalculateSequence(WithDemand(shifts, MaxDemand, MaxDemand), params.Clone())
}

// EvaluateWorstCaseCombined is EvaluateWorstCase with both indices.
func EvaluateWorstCaseCombined(shifts []ShiftDefinition, params *FatigueParameters) ([]CombinedFatigueResult, error) {
	return CalculateCombinedSequence(WithDemand(shifts, MaxDemand, MaxDemand), params.Clone())
}

// EvaluateRoles runs the pattern once per role, substituting the role's
// demand ratings on every shift. Results are returned in the order of roles;
// nil roles means the built-in presets. Roles are evaluated concurrently.
func EvaluateRoles(shifts []ShiftDefinition, params *FatigueParameters, roles []RolePreset) ([]RoleComparisonResult, error) {
	if roles == nil {
		roles = DefaultRolePresets()
	}
	if err := ValidateRoles(roles); err != nil {
		return nil, err
	}
	// Fail before fanning out so a bad pattern yields one error, not one per role.
	if _, err := Normalize(shifts, params); err != nil {
		return nil, err
	}

	out := make([]RoleComparisonResult, len(roles))
	var g errgroup.Group
	for i, role := range roles {
		g.Go(func() error {
			results, err := CalculateSequence(WithDemand(shifts, role.Workload, role.Attention), params.Clone())
			if err != nil {
				return fmt.Errorf("role %q: %w", role.Name, err)
			}
			sum := Summarize(results)
			out[i] = RoleComparisonResult{
				Role:             role.Name,
				Workload:         role.Workload,
				Attention:        role.Attention,
				MaxRisk:          sum.MaxRisk,
				AvgRisk:          sum.AvgRisk,
				HighRiskDayCount: sum.HighRiskDayCount,
				IsCompliant:      sum.Compliant,
				Results:          results,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
