package fatigue

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterPattern() []ShiftDefinition {
	return []ShiftDefinition{
		{Day: 1, StartTime: "07:00", EndTime: "19:00", Workload: Int(2), Attention: Int(3)},
		{Day: 2, StartTime: "07:00", EndTime: "19:00", Workload: Int(1), Attention: Int(1)},
		{Day: 3, StartTime: "19:00", EndTime: "07:00"},
		{Day: 4, StartTime: "19:00", EndTime: "07:00", Workload: Int(4)},
		{Day: 9, StartTime: "22:00", EndTime: "06:00", BreakFrequency: Int(300), BreakLength: Int(10)},
	}
}

func clonePattern(shifts []ShiftDefinition) []ShiftDefinition {
	out := make([]ShiftDefinition, len(shifts))
	for i, s := range shifts {
		out[i] = s.Clone()
	}
	return out
}

func TestEvaluateWorstCase_UpperBound(t *testing.T) {
	pattern := rosterPattern()
	worst, err := EvaluateWorstCase(pattern, nil)
	require.NoError(t, err)

	for w := MinDemand; w <= MaxDemand; w++ {
		for a := MinDemand; a <= MaxDemand; a++ {
			got, err := CalculateSequence(WithDemand(pattern, w, a), nil)
			require.NoError(t, err)
			for i := range got {
				assert.GreaterOrEqual(t, worst[i].RiskIndex, got[i].RiskIndex, "w=%d a=%d day %d", w, a, got[i].Day)
			}
		}
	}

	actual, err := CalculateSequence(pattern, nil)
	require.NoError(t, err)
	for i := range actual {
		assert.GreaterOrEqual(t, worst[i].RiskIndex, actual[i].RiskIndex)
		// Only the job factor moves.
		assert.InDelta(t, actual[i].Cumulative, worst[i].Cumulative, tol)
		assert.InDelta(t, actual[i].Timing, worst[i].Timing, tol)
	}
}

func TestEvaluateWorstCase_LeavesInputUntouched(t *testing.T) {
	pattern := rosterPattern()
	params := &FatigueParameters{Workload: Int(2), Attention: Int(2), CommuteTime: Int(30)}
	wantPattern := clonePattern(pattern)
	wantParams := params.Clone()

	_, err := EvaluateWorstCase(pattern, params)
	require.NoError(t, err)
	_, err = EvaluateWorstCaseCombined(pattern, params)
	require.NoError(t, err)
	_, err = EvaluateRoles(pattern, params, nil)
	require.NoError(t, err)

	if diff := cmp.Diff(wantPattern, pattern); diff != "" {
		t.Errorf("shifts mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantParams, params); diff != "" {
		t.Errorf("params mutated (-want +got):\n%s", diff)
	}
}

func TestEvaluateRoles_MatchesStandaloneRuns(t *testing.T) {
	pattern := rosterPattern()
	params := &FatigueParameters{CommuteTime: Int(90)}
	roles := []RolePreset{
		{Name: "Lookout", Workload: 2, Attention: 5},
		{Name: "Track Worker", Workload: 4, Attention: 3},
		{Name: "Planner", Workload: 1, Attention: 1},
	}

	got, err := EvaluateRoles(pattern, params, roles)
	require.NoError(t, err)
	require.Len(t, got, len(roles))

	for i, role := range roles {
		want, err := CalculateSequence(WithDemand(pattern, role.Workload, role.Attention), params)
		require.NoError(t, err)

		r := got[i]
		assert.Equal(t, role.Name, r.Role)
		if diff := cmp.Diff(want, r.Results); diff != "" {
			t.Errorf("%s results differ (-standalone +role):\n%s", role.Name, diff)
		}
		sum := Summarize(want)
		assert.Equal(t, sum.MaxRisk, r.MaxRisk)
		assert.Equal(t, sum.AvgRisk, r.AvgRisk)
		assert.Equal(t, sum.HighRiskDayCount, r.HighRiskDayCount)
		assert.Equal(t, r.MaxRisk < 1.2, r.IsCompliant)
	}
}

func TestEvaluateRoles_DefaultPresets(t *testing.T) {
	got, err := EvaluateRoles(rosterPattern(), nil, nil)
	require.NoError(t, err)
	presets := DefaultRolePresets()
	require.Len(t, got, len(presets))
	for i, p := range presets {
		assert.Equal(t, p.Name, got[i].Role)
	}
}

func TestDefaultRolePresets_ReturnsCopy(t *testing.T) {
	p := DefaultRolePresets()
	p[0].Workload = 1
	assert.NotEqual(t, 1, DefaultRolePresets()[0].Workload)
}

func TestEvaluateRoles_Errors(t *testing.T) {
	_, err := EvaluateRoles(rosterPattern(), nil, []RolePreset{{Name: "Bad", Workload: 6, Attention: 1}})
	assert.ErrorIs(t, err, ErrOutOfRangeParameter)

	dup := append(rosterPattern(), ShiftDefinition{Day: 1, StartTime: "08:00", EndTime: "16:00"})
	_, err = EvaluateRoles(dup, nil, nil)
	assert.ErrorIs(t, err, ErrDuplicateDay)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Day)

	got, err := EvaluateRoles(rosterPattern(), nil, []RolePreset{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSummarize(t *testing.T) {
	results := []FatigueResult{
		{RiskIndex: 0.9, RiskLevel: GetRiskLevel(0.9)},
		{RiskIndex: 1.15, RiskLevel: GetRiskLevel(1.15)},
		{RiskIndex: 1.25, RiskLevel: GetRiskLevel(1.25)},
	}
	sum := Summarize(results)
	assert.Equal(t, 3, sum.Shifts)
	assert.InDelta(t, 1.25, sum.MaxRisk, tol)
	assert.InDelta(t, 3.3/3, sum.AvgRisk, tol)
	assert.Equal(t, 2, sum.HighRiskDayCount)
	assert.Equal(t, LevelCritical, sum.WorstLevel.Level)
	assert.False(t, sum.Compliant)

	empty := Summarize(nil)
	assert.True(t, empty.Compliant)
	assert.Equal(t, LevelLow, empty.WorstLevel.Level)
}
