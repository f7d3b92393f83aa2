// Package testutil provides shared helpers for database-backed tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shreshthco18-lgtm/calorie-tracker/models"
)

// SetupTestDB opens a throwaway sqlite database under the test's temp
// directory and migrates the ledger schema. The file disappears with the
// temp dir during test cleanup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "ledger.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// sqlite only supports one writer at a time; a single connection keeps
	// concurrent test writers queued instead of failing with SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.DayRecord{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
