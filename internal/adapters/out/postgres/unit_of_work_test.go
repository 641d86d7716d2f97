package postgres_test

import (
	"testing"

	postgres_adapter "cuboids/internal/adapters/out/postgres"
	"cuboids/internal/adapters/out/postgres/sqlitetest"
	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormUnitOfWork_CommitPersistsAcrossRepositories(t *testing.T) {
	// Given
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(sqlitetest.Open(t))
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	// When a bag and a cuboid are written in one transaction
	b, err := bag.NewBag("Backpack", 100)
	require.NoError(t, err)
	storedBag, err := uow.BagRepository().Add(ctx, b)
	require.NoError(t, err)

	c, err := cuboid.NewCuboid(storedBag.ID(), kernel.MustNewDimensions(2, 5, 10))
	require.NoError(t, err)
	_, err = uow.CuboidRepository().Add(ctx, c)
	require.NoError(t, err)

	require.NoError(t, uow.Commit(ctx))

	// Then both are visible outside of it
	got, err := factory.Create().BagRepository().Get(ctx, storedBag.ID())
	require.NoError(t, err)
	assert.Len(t, got.Cuboids(), 1)
	assert.InDelta(t, 0.0, got.AvailableVolume(), 1e-9)
}

func TestGormUnitOfWork_RollbackDiscardsChanges(t *testing.T) {
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(sqlitetest.Open(t))
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	b, err := bag.NewBag("Backpack", 100)
	require.NoError(t, err)
	storedBag, err := uow.BagRepository().Add(ctx, b)
	require.NoError(t, err)

	require.NoError(t, uow.Rollback(ctx))

	_, err = factory.Create().BagRepository().Get(ctx, storedBag.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormUnitOfWork_TransactionLifecycle(t *testing.T) {
	ctx := t.Context()
	uow := postgres_adapter.NewGormUnitOfWorkFactory(sqlitetest.Open(t)).Create()

	require.ErrorIs(t, uow.Commit(ctx), gorm.ErrInvalidTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx), "multiple begin calls should be safe")
	require.NoError(t, uow.Commit(ctx))
	require.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction, "rollback after commit has nothing to undo")
}

func TestGormUnitOfWorkFactory_CreatesSeparateInstances(t *testing.T) {
	factory := postgres_adapter.NewGormUnitOfWorkFactory(sqlitetest.Open(t))

	uow1 := factory.Create()
	uow2 := factory.Create()

	assert.NotSame(t, uow1, uow2)
	assert.NotNil(t, uow1.BagRepository())
	assert.NotNil(t, uow1.CuboidRepository())
}
