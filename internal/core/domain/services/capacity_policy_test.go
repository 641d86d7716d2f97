package services_test

import (
	"testing"

	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBagWithCuboids(t *testing.T, volume float64, dims ...kernel.Dimensions) *bag.Bag {
	t.Helper()

	bagID := kernel.MustNewID(1)
	cuboids := make([]*cuboid.Cuboid, 0, len(dims))
	for i, d := range dims {
		c, err := cuboid.RestoreCuboid(kernel.MustNewID(int64(i+1)), bagID, d)
		require.NoError(t, err)
		cuboids = append(cuboids, c)
	}

	b, err := bag.RestoreBag(bagID, "Bag", volume, cuboids)
	require.NoError(t, err)
	return b
}

func TestParseUpdateMode(t *testing.T) {
	testCases := []struct {
		input   string
		want    services.UpdateMode
		wantErr bool
	}{
		{"", services.UpdateModeLegacy, false},
		{"legacy", services.UpdateModeLegacy, false},
		{"exclude-self", services.UpdateModeExcludeSelf, false},
		{"strict", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			mode, err := services.ParseUpdateMode(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, services.ErrUnknownUpdateMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
		})
	}
}

func TestNewCapacityPolicy_DefaultsToLegacy(t *testing.T) {
	assert.Equal(t, services.UpdateModeLegacy, services.NewCapacityPolicy("").UpdateMode())
}

func TestCapacityPolicy_CheckPlacement(t *testing.T) {
	policy := services.NewCapacityPolicy(services.UpdateModeLegacy)

	t.Run("exact fit into empty bag", func(t *testing.T) {
		b := newBagWithCuboids(t, 100)
		require.NoError(t, policy.CheckPlacement(b, 100))
	})

	t.Run("full bag rejects anything", func(t *testing.T) {
		b := newBagWithCuboids(t, 100, kernel.MustNewDimensions(2, 5, 10))
		require.ErrorIs(t, policy.CheckPlacement(b, 1), services.ErrInsufficientCapacity)
	})

	t.Run("partially filled bag", func(t *testing.T) {
		b := newBagWithCuboids(t, 100, kernel.MustNewDimensions(5, 5, 2))
		require.NoError(t, policy.CheckPlacement(b, 50))
		require.ErrorIs(t, policy.CheckPlacement(b, 51), services.ErrInsufficientCapacity)
	})

	t.Run("unconstructed bag", func(t *testing.T) {
		require.ErrorIs(t, policy.CheckPlacement(&bag.Bag{}, 1), bag.ErrBagIsNotConstructed)
	})
}

func TestCapacityPolicy_CheckResize_Legacy(t *testing.T) {
	policy := services.NewCapacityPolicy(services.UpdateModeLegacy)

	t.Run("old volume still counts as occupied", func(t *testing.T) {
		// 60 of 100 used by the cuboid itself, 40 available.
		b := newBagWithCuboids(t, 100, kernel.MustNewDimensions(3, 4, 5))
		target, _ := b.Cuboid(kernel.MustNewID(1))

		require.NoError(t, policy.CheckResize(b, target, 40))
		require.ErrorIs(t, policy.CheckResize(b, target, 60), services.ErrInsufficientCapacity)
	})

	t.Run("full bag rejects a same-size resize", func(t *testing.T) {
		b := newBagWithCuboids(t, 100, kernel.MustNewDimensions(2, 5, 10))
		target, _ := b.Cuboid(kernel.MustNewID(1))

		require.ErrorIs(t, policy.CheckResize(b, target, 100), services.ErrInsufficientCapacity)
	})
}

func TestCapacityPolicy_CheckResize_ExcludeSelf(t *testing.T) {
	policy := services.NewCapacityPolicy(services.UpdateModeExcludeSelf)

	t.Run("old volume is given back", func(t *testing.T) {
		b := newBagWithCuboids(t, 100, kernel.MustNewDimensions(3, 4, 5), kernel.MustNewDimensions(2, 2, 5))
		target, _ := b.Cuboid(kernel.MustNewID(1))

		// 100 - 20 (other cuboid) = 80 available to the target.
		require.NoError(t, policy.CheckResize(b, target, 80))
		require.ErrorIs(t, policy.CheckResize(b, target, 81), services.ErrInsufficientCapacity)
	})

	t.Run("full bag accepts a same-size resize", func(t *testing.T) {
		b := newBagWithCuboids(t, 100, kernel.MustNewDimensions(2, 5, 10))
		target, _ := b.Cuboid(kernel.MustNewID(1))

		require.NoError(t, policy.CheckResize(b, target, 100))
	})

	t.Run("cuboid not in the bag gets nothing back", func(t *testing.T) {
		b := newBagWithCuboids(t, 100, kernel.MustNewDimensions(2, 5, 10))
		stranger, err := cuboid.RestoreCuboid(kernel.MustNewID(9), kernel.MustNewID(1), kernel.MustNewDimensions(1, 1, 1))
		require.NoError(t, err)

		require.ErrorIs(t, policy.CheckResize(b, stranger, 1), services.ErrInsufficientCapacity)
	})
}
