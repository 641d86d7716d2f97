package commands_test

import (
	"errors"
	"testing"

	"cuboids/internal/core/application/usecases/commands"
	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBagCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateBagCommand("Backpack", 100)
	require.NoError(t, err)

	repo := new(MockBagRepository)
	uow := new(MockBagUoW)
	factory := new(MockBagUoWFactory)

	stored := storedBag(t, 100)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BagRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(b *bag.Bag) bool {
			return b.Title() == "Backpack" && b.Volume() == 100 && b.ID().IsZero()
		})).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	id, err := commands.NewCreateBagCommandHandler(factory).Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, stored.ID(), id)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateBagCommandHandler_Handle_InvalidVolume(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBagCommand("Backpack", -1)
	require.NoError(t, err)

	factory := new(MockBagUoWFactory)
	_, err = commands.NewCreateBagCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateBagCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateBagCommand("Backpack", 100)
	require.NoError(t, err)

	repo := new(MockBagRepository)
	uow := new(MockBagUoW)
	factory := new(MockBagUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BagRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*bag.Bag")).Return(nil, errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewCreateBagCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateBagCommandHandler_Handle_RenameAndGrow(t *testing.T) {
	ctx := t.Context()
	b := storedBag(t, 100, kernel.MustNewDimensions(2, 5, 10))
	title, volume := "Suitcase", 150.0
	cmd, err := commands.NewUpdateBagCommand(b.ID(), &title, &volume)
	require.NoError(t, err)

	repo := new(MockBagRepository)
	uow := new(MockBagUoW)
	factory := new(MockBagUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BagRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once(),
		repo.On("Update", ctx, b).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewUpdateBagCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Suitcase", b.Title())
	assert.InDelta(t, 150.0, b.Volume(), 1e-9)
	assert.InDelta(t, 50.0, b.AvailableVolume(), 1e-9)
	repo.AssertExpectations(t)
}

func TestUpdateBagCommandHandler_Handle_ShrinkBelowPayload(t *testing.T) {
	ctx := t.Context()
	b := storedBag(t, 100, kernel.MustNewDimensions(2, 5, 10))
	volume := 99.0
	cmd, err := commands.NewUpdateBagCommand(b.ID(), nil, &volume)
	require.NoError(t, err)

	repo := new(MockBagRepository)
	uow := new(MockBagUoW)
	factory := new(MockBagUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BagRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewUpdateBagCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, bag.ErrVolumeBelowPayload)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.InDelta(t, 100.0, b.Volume(), 1e-9)
}

func TestUpdateBagCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.MustNewID(5)
	title := "Tote"
	cmd, err := commands.NewUpdateBagCommand(id, &title, nil)
	require.NoError(t, err)

	repo := new(MockBagRepository)
	uow := new(MockBagUoW)
	factory := new(MockBagUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BagRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("bag", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewUpdateBagCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteBagCommandHandler_Handle_Success(t *testing.T) {
	// Given a bag with two cuboids
	ctx := t.Context()
	b := storedBag(t, 100, kernel.MustNewDimensions(1, 1, 1), kernel.MustNewDimensions(2, 2, 2))
	cmd, err := commands.NewDeleteBagCommand(b.ID())
	require.NoError(t, err)

	bagRepo := new(MockBagRepository)
	cuboidRepo := new(MockCuboidRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		bagRepo.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once(),
		uow.On("CuboidRepository").Return(cuboidRepo).Once(),
		cuboidRepo.On("DeleteByBag", ctx, b.ID()).Return(int64(2), nil).Once(),
		bagRepo.On("Delete", ctx, b.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// When deleting it
	err = commands.NewDeleteBagCommandHandler(factory).Handle(ctx, cmd)

	// Then cuboids go first and the bag row after them
	require.NoError(t, err)
	bagRepo.AssertExpectations(t)
	cuboidRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteBagCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.MustNewID(8)
	cmd, err := commands.NewDeleteBagCommand(id)
	require.NoError(t, err)

	bagRepo := new(MockBagRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BagRepository").Return(bagRepo).Once(),
		bagRepo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("bag", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewDeleteBagCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "CuboidRepository")
}
