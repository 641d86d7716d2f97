package jobs_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"cuboids/internal/adapters/out/postgres/bagrepo"
	"cuboids/internal/adapters/out/postgres/cuboidrepo"
	"cuboids/internal/adapters/out/postgres/sqlitetest"
	"cuboids/internal/core/application/usecases/queries"
	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/jobs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBag(t *testing.T, db *gorm.DB, volume float64, dims ...kernel.Dimensions) kernel.ID {
	t.Helper()
	ctx := t.Context()

	b, err := bag.NewBag("Backpack", volume)
	require.NoError(t, err)
	stored, err := bagrepo.NewGormBagRepository(db).Add(ctx, b)
	require.NoError(t, err)

	// Cuboids go straight to the repository, past the capacity check.
	for _, d := range dims {
		c, err := cuboid.NewCuboid(stored.ID(), d)
		require.NoError(t, err)
		_, err = cuboidrepo.NewGormCuboidRepository(db).Add(ctx, c)
		require.NoError(t, err)
	}

	return stored.ID()
}

func TestCapacityAuditJob_RunOnce(t *testing.T) {
	// Given
	db := sqlitetest.Open(t)
	seedBag(t, db, 100, kernel.MustNewDimensions(5, 5, 4))
	overfilled := seedBag(t, db, 10, kernel.MustNewDimensions(2, 2, 2), kernel.MustNewDimensions(2, 2, 2))

	var out bytes.Buffer
	job := jobs.NewCapacityAuditJob(queries.NewFindOverfilledBagsQueryHandler(db), "@every 1h", zerolog.New(&out))

	// When
	result, err := job.RunOnce(t.Context())

	// Then
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].ID.IsEqual(overfilled))
	assert.InDelta(t, 16.0, result[0].PayloadVolume, 1e-9)
	assert.Contains(t, out.String(), `"bag_id":`+overfilled.String())
	assert.Contains(t, out.String(), `"level":"warn"`)
}

func TestCapacityAuditJob_RunOnce_NothingToReport(t *testing.T) {
	db := sqlitetest.Open(t)
	seedBag(t, db, 8, kernel.MustNewDimensions(2, 2, 2))

	var out bytes.Buffer
	job := jobs.NewCapacityAuditJob(queries.NewFindOverfilledBagsQueryHandler(db), "@every 1h", zerolog.New(&out))

	result, err := job.RunOnce(t.Context())

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Empty(t, out.String())
}

func TestJobManager_StartAndStop(t *testing.T) {
	db := sqlitetest.Open(t)
	manager := jobs.NewJobManager(queries.NewFindOverfilledBagsQueryHandler(db), "@every 1h", zerolog.Nop())

	require.NoError(t, manager.StartAll())

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	manager.StopAll(ctx)
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	db := sqlitetest.Open(t)
	manager := jobs.NewJobManager(queries.NewFindOverfilledBagsQueryHandler(db), "not a schedule", zerolog.Nop())

	err := manager.StartAll()

	require.Error(t, err)
	assert.ErrorContains(t, err, "capacity audit job")
}
