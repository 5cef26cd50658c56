package fatigue

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRiskLevel(t *testing.T) {
	cases := []struct {
		value float64
		want  Level
	}{
		{0, LevelLow},
		{0.9999, LevelLow},
		{1.0, LevelModerate},
		{1.0999, LevelModerate},
		{1.1, LevelElevated},
		{1.1999, LevelElevated},
		{1.2, LevelCritical},
		{3.5, LevelCritical},
	}
	for _, tc := range cases {
		got := GetRiskLevel(tc.value)
		assert.Equal(t, tc.want, got.Level, "value %v", tc.value)
		assert.Equal(t, tc.want.Label(), got.Label)
	}
}

func TestGetFatigueLevel(t *testing.T) {
	day := []struct {
		value float64
		want  Level
	}{
		{17.49, LevelLow},
		{17.5, LevelModerate},
		{26.25, LevelElevated},
		{34.99, LevelElevated},
		{35, LevelCritical},
	}
	for _, tc := range day {
		assert.Equal(t, tc.want, GetFatigueLevel(tc.value, false).Level, "day %v", tc.value)
	}

	night := []struct {
		value float64
		want  Level
	}{
		{17.5, LevelLow},
		{22.5, LevelModerate},
		{33.75, LevelElevated},
		{35, LevelElevated},
		{44.99, LevelElevated},
		{45, LevelCritical},
	}
	for _, tc := range night {
		assert.Equal(t, tc.want, GetFatigueLevel(tc.value, true).Level, "night %v", tc.value)
	}
}

func TestLevel_Ordering(t *testing.T) {
	assert.Less(t, LevelLow, LevelModerate)
	assert.Less(t, LevelModerate, LevelElevated)
	assert.Less(t, LevelElevated, LevelCritical)
	assert.Equal(t, "Level(7)", Level(7).String())
}

func TestRiskLevel_JSON(t *testing.T) {
	b, err := json.Marshal(GetRiskLevel(1.15))
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"elevated","label":"Elevated risk - review controls"}`, string(b))

	var back RiskLevel
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, LevelElevated, back.Level)

	var l Level
	assert.Error(t, l.UnmarshalText([]byte("extreme")))
}

func TestClassify_NonFiniteIsCritical(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, LevelCritical, GetRiskLevel(v).Level, "risk %v", v)
		assert.Equal(t, LevelCritical, GetFatigueLevel(v, false).Level, "day %v", v)
		assert.Equal(t, LevelCritical, GetFatigueLevel(v, true).Level, "night %v", v)
	}
}
