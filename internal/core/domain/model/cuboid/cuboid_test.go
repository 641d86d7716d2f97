package cuboid_test

import (
	"testing"

	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCuboid(t *testing.T) {
	bagID := kernel.MustNewID(1)
	dims := kernel.MustNewDimensions(2, 5, 10)

	t.Run("should create unpersisted cuboid", func(t *testing.T) {
		c, err := cuboid.NewCuboid(bagID, dims)

		require.NoError(t, err)
		assert.True(t, c.BagID().IsEqual(bagID))
		assert.False(t, c.IsPersisted())
		assert.True(t, c.ID().IsZero())
		assert.InDelta(t, 2.0, c.Width(), 0)
		assert.InDelta(t, 5.0, c.Height(), 0)
		assert.InDelta(t, 10.0, c.Depth(), 0)
		assert.InDelta(t, 100.0, c.Volume(), 0)
		require.NoError(t, c.Validate())
	})

	t.Run("should reject missing bag", func(t *testing.T) {
		c, err := cuboid.NewCuboid(kernel.ID{}, dims)

		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
		assert.Nil(t, c)
	})

	t.Run("should reject zero dimensions", func(t *testing.T) {
		c, err := cuboid.NewCuboid(bagID, kernel.Dimensions{})

		require.ErrorIs(t, err, kernel.ErrDimensionsAreNotConstructed)
		assert.Nil(t, c)
	})

	t.Run("should aggregate errors", func(t *testing.T) {
		_, err := cuboid.NewCuboid(kernel.ID{}, kernel.Dimensions{})

		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrDimensionsAreNotConstructed)
	})
}

func TestRestoreCuboid(t *testing.T) {
	t.Run("should restore persisted cuboid", func(t *testing.T) {
		c, err := cuboid.RestoreCuboid(kernel.MustNewID(5), kernel.MustNewID(1), kernel.MustNewDimensions(1, 2, 3))

		require.NoError(t, err)
		assert.True(t, c.IsPersisted())
		assert.Equal(t, int64(5), c.ID().Int64())
		assert.InDelta(t, 6.0, c.Volume(), 0)
	})

	t.Run("should require id", func(t *testing.T) {
		_, err := cuboid.RestoreCuboid(kernel.ID{}, kernel.MustNewID(1), kernel.MustNewDimensions(1, 2, 3))

		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})
}

func TestCuboid_Resize(t *testing.T) {
	c, err := cuboid.RestoreCuboid(kernel.MustNewID(5), kernel.MustNewID(1), kernel.MustNewDimensions(1, 2, 3))
	require.NoError(t, err)

	t.Run("should replace dimensions", func(t *testing.T) {
		require.NoError(t, c.Resize(kernel.MustNewDimensions(4, 4, 4)))
		assert.InDelta(t, 64.0, c.Volume(), 0)
	})

	t.Run("should keep old dimensions on invalid input", func(t *testing.T) {
		require.Error(t, c.Resize(kernel.Dimensions{}))
		assert.InDelta(t, 64.0, c.Volume(), 0)
	})
}

func TestCuboid_IsEqual(t *testing.T) {
	a, _ := cuboid.RestoreCuboid(kernel.MustNewID(1), kernel.MustNewID(1), kernel.MustNewDimensions(1, 1, 1))
	b, _ := cuboid.RestoreCuboid(kernel.MustNewID(1), kernel.MustNewID(2), kernel.MustNewDimensions(2, 2, 2))
	c, _ := cuboid.RestoreCuboid(kernel.MustNewID(2), kernel.MustNewID(1), kernel.MustNewDimensions(1, 1, 1))
	fresh, _ := cuboid.NewCuboid(kernel.MustNewID(1), kernel.MustNewDimensions(1, 1, 1))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
	assert.False(t, fresh.IsEqual(fresh))
}

func TestCuboid_ZeroValueIsInvalid(t *testing.T) {
	var c cuboid.Cuboid
	require.ErrorIs(t, c.Validate(), cuboid.ErrCuboidIsNotConstructed)

	var nilCuboid *cuboid.Cuboid
	require.ErrorIs(t, nilCuboid.Validate(), cuboid.ErrCuboidIsNotConstructed)
}

func TestTotalVolume(t *testing.T) {
	a, _ := cuboid.NewCuboid(kernel.MustNewID(1), kernel.MustNewDimensions(1, 2, 3))
	b, _ := cuboid.NewCuboid(kernel.MustNewID(1), kernel.MustNewDimensions(2, 2, 2))

	assert.InDelta(t, 0.0, cuboid.TotalVolume(nil), 0)
	assert.InDelta(t, 14.0, cuboid.TotalVolume([]*cuboid.Cuboid{a, b}), 0)
}
