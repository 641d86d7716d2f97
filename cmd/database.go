package cmd

import (
	"context"
	"fmt"

	"cuboids/internal/adapters/out/postgres"
	"cuboids/internal/pkg/logger"

	"github.com/rs/zerolog"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDatabase connects to the configured database and migrates the schema.
// The caller owns the handle and must pass it to CloseDatabase.
func OpenDatabase(ctx context.Context, config Config, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.DBDriver {
	case DBDriverPostgres:
		dialector = gormPostgres.Open(config.PostgresDSN())
	case DBDriverSQLite:
		dialector = sqlite.Open(config.DBName)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.NewGorm(log)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", config.DBDriver, err)
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		_ = CloseDatabase(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// CloseDatabase releases the connection pool behind db.
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
