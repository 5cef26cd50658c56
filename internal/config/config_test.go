package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arnavshah/fatigue-risk-api/pkg/fatigue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DATA_PATH", "ADMIN_USERNAME", "DEFAULT_RATE_LIMIT", "LOG_LEVEL", "FATIGUE_PRESETS_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "api_keys.db", cfg.DataPath)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 10000, cfg.DefaultRateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/fri")
	t.Setenv("DEFAULT_RATE_LIMIT", "50")
	t.Setenv("FATIGUE_PRESETS_FILE", "/etc/fri/presets.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost/fri", cfg.DatabaseURL)
	assert.Equal(t, 50, cfg.DefaultRateLimit)
	assert.Equal(t, "/etc/fri/presets.yaml", cfg.PresetsFile)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DEFAULT_RATE_LIMIT", "lots")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DEFAULT_RATE_LIMIT", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadDotEnv_FirstExistingWins(t *testing.T) {
	first := writeFile(t, "first.env", "FRI_TEST_DOTENV=first\n")
	second := writeFile(t, "second.env", "FRI_TEST_DOTENV=second\n")
	t.Setenv("FRI_TEST_DOTENV", "")
	os.Unsetenv("FRI_TEST_DOTENV")

	LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), first, second)
	assert.Equal(t, "first", os.Getenv("FRI_TEST_DOTENV"))
}

func TestLoadPresets_Builtin(t *testing.T) {
	p, err := LoadPresets("")
	require.NoError(t, err)
	assert.Nil(t, p.Defaults)
	assert.Equal(t, fatigue.DefaultRolePresets(), p.Roles)
	assert.Nil(t, p.Params(nil))
}

func TestLoadPresets_File(t *testing.T) {
	path := writeFile(t, "presets.yaml", `
defaults:
  commute_time: 90
  continuous_work: 300
roles:
  - name: Lookout
    workload: 2
    attention: 5
  - name: Welder
    workload: 4
    attention: 3
`)
	p, err := LoadPresets(path)
	require.NoError(t, err)
	require.NotNil(t, p.Defaults)
	assert.Equal(t, 90, *p.Defaults.CommuteTime)
	assert.Equal(t, 300, *p.Defaults.ContinuousWork)
	assert.Nil(t, p.Defaults.Workload)
	assert.Equal(t, []fatigue.RolePreset{
		{Name: "Lookout", Workload: 2, Attention: 5},
		{Name: "Welder", Workload: 4, Attention: 3},
	}, p.Roles)

	// Params hands out copies of the defaults.
	got := p.Params(nil)
	*got.CommuteTime = 0
	assert.Equal(t, 90, *p.Defaults.CommuteTime)

	req := &fatigue.FatigueParameters{CommuteTime: fatigue.Int(10)}
	assert.Same(t, req, p.Params(req))
}

func TestLoadPresets_NoRolesKeepsBuiltin(t *testing.T) {
	path := writeFile(t, "presets.yaml", "defaults:\n  workload: 3\n")
	p, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Equal(t, fatigue.DefaultRolePresets(), p.Roles)
}

func TestLoadPresets_Errors(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "roles: [",
		"bad default":     "defaults:\n  attention: 9\n",
		"bad role":        "roles:\n  - name: X\n    workload: 0\n    attention: 1\n",
		"unnamed role":    "roles:\n  - workload: 1\n    attention: 1\n",
		"duplicate roles": "roles:\n  - {name: A, workload: 1, attention: 1}\n  - {name: A, workload: 2, attention: 2}\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadPresets(writeFile(t, "presets.yaml", content))
			assert.Error(t, err)
		})
	}

	_, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
