package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arnavshah/fatigue-risk-api/pkg/fatigue"
	"github.com/arnavshah/fatigue-risk-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		worstCase, listRoles, night, fgiScale, asJSON = false, false, false, false, false
	})
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestLoadPattern(t *testing.T) {
	in, err := loadPattern("testdata/pattern.yaml")
	require.NoError(t, err)
	require.Len(t, in.Shifts, 4)
	require.NotNil(t, in.Params)
	assert.Equal(t, 3, *in.Params.Workload)
	assert.Equal(t, 300, *in.Shifts[3].BreakFrequency)

	csvIn, err := loadPattern("testdata/pattern.csv")
	require.NoError(t, err)
	require.Len(t, csvIn.Shifts, 2)
	assert.Nil(t, csvIn.Params)

	_, err = loadPattern("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestEvaluateJSON(t *testing.T) {
	out := run(t, "evaluate", "testdata/pattern.yaml", "--json")

	var resp models.CombinedResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Results, 4)
	assert.False(t, resp.Results[0].IsNight)
	assert.True(t, resp.Results[3].IsNight)
	assert.Equal(t, 4, resp.Summary.Shifts)
}

func TestEvaluateWorstCase(t *testing.T) {
	var base, worst models.CombinedResponse
	require.NoError(t, json.Unmarshal([]byte(run(t, "evaluate", "testdata/pattern.yaml", "--json")), &base))
	require.NoError(t, json.Unmarshal([]byte(run(t, "evaluate", "testdata/pattern.yaml", "--json", "--worst-case")), &worst))
	for i := range base.Results {
		assert.Greater(t, worst.Results[i].RiskIndex, base.Results[i].RiskIndex)
	}
}

func TestEvaluateTable(t *testing.T) {
	out := run(t, "evaluate", "testdata/pattern.csv")
	assert.Contains(t, out, "08:00")
	assert.Contains(t, out, "2 shifts")
}

func TestRolesCommand(t *testing.T) {
	var results []fatigue.RoleComparisonResult
	require.NoError(t, json.Unmarshal([]byte(run(t, "roles", "testdata/pattern.yaml", "--json")), &results))
	assert.Len(t, results, len(fatigue.DefaultRolePresets()))

	out := run(t, "roles", "--list")
	for _, p := range fatigue.DefaultRolePresets() {
		assert.Contains(t, out, p.Name)
	}
}

func TestLevelCommand(t *testing.T) {
	var level fatigue.RiskLevel
	require.NoError(t, json.Unmarshal([]byte(run(t, "level", "1.1", "--json")), &level))
	assert.Equal(t, fatigue.LevelElevated, level.Level)

	require.NoError(t, json.Unmarshal([]byte(run(t, "level", "40", "--fatigue", "--night", "--json")), &level))
	assert.Equal(t, fatigue.LevelElevated, level.Level)
}

func TestLevelCommand_RejectsNonFinite(t *testing.T) {
	for _, v := range []string{"NaN", "Inf"} {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs([]string{"level", v})
		err := rootCmd.Execute()
		require.Error(t, err, v)
		assert.Contains(t, err.Error(), "not a finite number")
	}
}
