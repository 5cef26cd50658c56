package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arnavshah/fatigue-risk-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(&config.Config{DataPath: filepath.Join(t.TempDir(), "keys.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestRecordUsage_UpsertsPerDay(t *testing.T) {
	db := openTestDB(t)
	day := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	require.NoError(t, RecordUsage(db, 1, day, 5, 1))
	require.NoError(t, RecordUsage(db, 1, day.Add(6*time.Hour), 5, 6))
	require.NoError(t, RecordUsage(db, 2, day, 3, 1))

	var rows []APIUsage
	require.NoError(t, db.Where("key_id = ?", 1).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-03-14", rows[0].Date)
	assert.Equal(t, 2, rows[0].RequestCount)
	assert.Equal(t, 10, rows[0].TotalShifts)
	assert.Equal(t, 7, rows[0].TotalScenarios)

	other, err := RecentUsage(db, 2, 10)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 1, other[0].RequestCount)
}

func TestRecentUsage_NewestFirstAndLimited(t *testing.T) {
	db := openTestDB(t)
	start := time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, RecordUsage(db, 7, start.AddDate(0, 0, i), 1, 1))
	}

	got, err := RecentUsage(db, 7, 3)
	require.NoError(t, err)
	dates := make([]string, len(got))
	for i, u := range got {
		dates[i] = u.Date
	}
	assert.Equal(t, []string{"2026-02-03", "2026-02-02", "2026-02-01"}, dates)

	none, err := RecentUsage(db, 99, 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOpen_MigratesKeysAndAdmins(t *testing.T) {
	db := openTestDB(t)

	key := APIKey{Key: "user.sig", Name: "depot", KeyPreview: "user.sig...", RateLimit: 50}
	require.NoError(t, db.Create(&key).Error)
	assert.NotZero(t, key.ID)

	// Key is unique.
	assert.Error(t, db.Create(&APIKey{Key: "user.sig", Name: "again"}).Error)

	require.NoError(t, db.Create(&MasterUser{Username: "admin", PasswordHash: "x"}).Error)
	var count int64
	require.NoError(t, db.Model(&MasterUser{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
