package commands_test

import (
	"context"
	"testing"

	"cuboids/internal/core/application/usecases/commands"
	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBagRepository struct{ mock.Mock }

func (m *MockBagRepository) Add(ctx context.Context, b *bag.Bag) (*bag.Bag, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bag.Bag), args.Error(1)
}

func (m *MockBagRepository) Update(ctx context.Context, b *bag.Bag) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBagRepository) Get(ctx context.Context, id kernel.ID) (*bag.Bag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bag.Bag), args.Error(1)
}

func (m *MockBagRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*bag.Bag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bag.Bag), args.Error(1)
}

func (m *MockBagRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCuboidRepository struct{ mock.Mock }

func (m *MockCuboidRepository) Add(ctx context.Context, c *cuboid.Cuboid) (*cuboid.Cuboid, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cuboid.Cuboid), args.Error(1)
}

func (m *MockCuboidRepository) Update(ctx context.Context, c *cuboid.Cuboid) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCuboidRepository) Get(ctx context.Context, id kernel.ID) (*cuboid.Cuboid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cuboid.Cuboid), args.Error(1)
}

func (m *MockCuboidRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCuboidRepository) DeleteByBag(ctx context.Context, bagID kernel.ID) (int64, error) {
	args := m.Called(ctx, bagID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUoW struct{ MockTx }

func (m *MockUoW) BagRepository() ports.BagRepository {
	args := m.Called()
	return args.Get(0).(ports.BagRepository)
}

func (m *MockUoW) CuboidRepository() ports.CuboidRepository {
	args := m.Called()
	return args.Get(0).(ports.CuboidRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockBagUoW struct{ MockTx }

func (m *MockBagUoW) BagRepository() ports.BagRepository {
	args := m.Called()
	return args.Get(0).(ports.BagRepository)
}

type MockBagUoWFactory struct{ mock.Mock }

func (m *MockBagUoWFactory) Create() commands.BagUoW {
	args := m.Called()
	return args.Get(0).(commands.BagUoW)
}

type MockCuboidUoW struct{ MockTx }

func (m *MockCuboidUoW) CuboidRepository() ports.CuboidRepository {
	args := m.Called()
	return args.Get(0).(ports.CuboidRepository)
}

type MockCuboidUoWFactory struct{ mock.Mock }

func (m *MockCuboidUoWFactory) Create() commands.CuboidUoW {
	args := m.Called()
	return args.Get(0).(commands.CuboidUoW)
}

// storedBag builds a persisted bag with id 1 holding cuboids numbered from 1.
func storedBag(t *testing.T, volume float64, dims ...kernel.Dimensions) *bag.Bag {
	t.Helper()

	bagID := kernel.MustNewID(1)
	children := make([]*cuboid.Cuboid, 0, len(dims))
	for i, d := range dims {
		children = append(children, storedCuboid(t, int64(i+1), bagID, d))
	}

	b, err := bag.RestoreBag(bagID, "Backpack", volume, children)
	require.NoError(t, err)
	return b
}

func storedCuboid(t *testing.T, id int64, bagID kernel.ID, dims kernel.Dimensions) *cuboid.Cuboid {
	t.Helper()

	c, err := cuboid.RestoreCuboid(kernel.MustNewID(id), bagID, dims)
	require.NoError(t, err)
	return c
}
