package commands

import (
	"context"
)

// DeleteCuboidCommandHandler removes cuboids. Deleting only frees capacity,
// so no bag lock is taken.
type DeleteCuboidCommandHandler struct {
	uowFactory CuboidUoWFactory
}

func NewDeleteCuboidCommandHandler(uowFactory CuboidUoWFactory) DeleteCuboidCommandHandler {
	return DeleteCuboidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the cuboid. Returns errs.ObjectNotFoundError if it does not exist.
func (h DeleteCuboidCommandHandler) Handle(ctx context.Context, command DeleteCuboidCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CuboidRepository().Delete(ctx, command.CuboidID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
