package commands

import (
	"context"
)

// UpdateBagCommandHandler renames and resizes bags. A bag cannot shrink
// below the volume of the cuboids it already holds.
type UpdateBagCommandHandler struct {
	uowFactory BagUoWFactory
}

func NewUpdateBagCommandHandler(uowFactory BagUoWFactory) UpdateBagCommandHandler {
	return UpdateBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the bag, applies the changes and stores it.
// Returns bag.ErrVolumeBelowPayload when the new volume is too small.
func (h UpdateBagCommandHandler) Handle(ctx context.Context, command UpdateBagCommand) error {
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

	if title, ok := command.Title(); ok {
		if err = b.Rename(title); err != nil {
			return err
		}
	}

	if volume, ok := command.Volume(); ok {
		if err = b.Resize(volume); err != nil {
			return err
		}
	}

	if err = bagRepo.Update(ctx, b); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
