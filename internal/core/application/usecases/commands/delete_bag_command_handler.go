package commands

import (
	"context"
)

// DeleteBagCommandHandler removes a bag together with its cuboids in one
// transaction.
type DeleteBagCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteBagCommandHandler(uowFactory UoWFactory) DeleteBagCommandHandler {
	return DeleteBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the bag, deletes its cuboids and then the bag itself.
// Returns errs.ObjectNotFoundError when the bag does not exist.
func (h DeleteBagCommandHandler) Handle(ctx context.Context, command DeleteBagCommand) error {
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

	bagRepo := uow.BagRepository()

	b, err := bagRepo.GetForUpdate(ctx, command.BagID())
	if err != nil {
		return err
	}

	if _, err = uow.CuboidRepository().DeleteByBag(ctx, b.ID()); err != nil {
		return err
	}

	if err = bagRepo.Delete(ctx, b.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
