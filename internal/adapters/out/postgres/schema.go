package postgres

import (
	"context"

	"cuboids/internal/adapters/out/postgres/bagrepo"
	"cuboids/internal/adapters/out/postgres/cuboidrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in migration order.
func Models() []any {
	return []any{
		&bagrepo.BagDTO{},
		&cuboidrepo.CuboidDTO{},
	}
}

// Migrate creates or updates the tables for Models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
