package database

import (
	"fmt"
	"time"

	"github.com/arnavshah/fatigue-risk-api/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	_ "modernc.org/sqlite"
)

// APIKey represents the api_keys table
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"-"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table: one row per key per day
type APIUsage struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	KeyID          uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date           string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount   int    `gorm:"default:0" json:"request_count"`
	TotalShifts    int    `gorm:"default:0" json:"total_shifts"`
	TotalScenarios int    `gorm:"default:0" json:"total_scenarios"`
}

// MasterUser represents the master_users table
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Open connects to Postgres when DATABASE_URL is set, else to SQLite, and
// migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	gormCfg := &gorm.Config{}
	if cfg.DatabaseURL != "" {
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseURL,
			PreferSimpleProtocol: true,
		})
		gormCfg.PrepareStmt = false
	} else {
		dialector = SQLite(cfg.DataPath)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// SQLite returns a gorm dialector for the database file at path, backed by
// the pure Go modernc driver so builds need no cgo.
func SQLite(path string) gorm.Dialector {
	return &sqlite.Dialector{DriverName: "sqlite", DSN: path}
}

// Migrate creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&APIKey{}, &APIUsage{}, &MasterUser{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// RecordUsage adds one request's counts to today's row for keyID using a
// single upsert (supported by both Postgres and SQLite).
func RecordUsage(db *gorm.DB, keyID uint, day time.Time, shifts, scenarios int) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count":   gorm.Expr("request_count + ?", 1),
			"total_shifts":    gorm.Expr("total_shifts + ?", shifts),
			"total_scenarios": gorm.Expr("total_scenarios + ?", scenarios),
		}),
	}).Create(&APIUsage{
		KeyID:          keyID,
		Date:           day.Format("2006-01-02"),
		RequestCount:   1,
		TotalShifts:    shifts,
		TotalScenarios: scenarios,
	}).Error
}

// RecentUsage returns up to limit days of usage for keyID, newest first.
func RecentUsage(db *gorm.DB, keyID uint, limit int) ([]APIUsage, error) {
	var usage []APIUsage
	err := db.Where("key_id = ?", keyID).Order("date desc").Limit(limit).Find(&usage).Error
	return usage, err
}
