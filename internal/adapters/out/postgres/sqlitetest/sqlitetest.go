// Package sqlitetest opens throwaway SQLite databases with the service schema
// for tests that need real SQL but not a PostgreSQL container.
package sqlitetest

import (
	"path/filepath"
	"testing"

	"cuboids/internal/adapters/out/postgres"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Open creates a migrated database in a temporary directory. The connection
// is closed when the test ends.
func Open(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := filepath.Join(tb.TempDir(), "cuboids.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open sqlite: %v", err)
	}

	if err = postgres.Migrate(tb.Context(), db); err != nil {
		tb.Fatalf("failed to migrate sqlite: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
