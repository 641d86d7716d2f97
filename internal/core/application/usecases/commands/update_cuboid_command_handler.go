package commands

import (
	"context"

	"cuboids/internal/core/domain/services"
)

// UpdateCuboidCommandHandler resizes stored cuboids. Whether the cuboid's
// current volume counts against the bag during the check depends on the
// policy's UpdateMode.
type UpdateCuboidCommandHandler struct {
	uowFactory UoWFactory
	policy     services.CapacityPolicy
}

// NewUpdateCuboidCommandHandler creates a handler for cuboid resizing.
func NewUpdateCuboidCommandHandler(uowFactory UoWFactory, policy services.CapacityPolicy) UpdateCuboidCommandHandler {
	return UpdateCuboidCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle loads the cuboid, locks its bag, checks the new volume and stores
// the new dimensions.
func (h UpdateCuboidCommandHandler) Handle(ctx context.Context, command UpdateCuboidCommand) error {
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

	cuboidRepo := uow.CuboidRepository()

	c, err := cuboidRepo.Get(ctx, command.CuboidID())
	if err != nil {
		return err
	}

	b, err := uow.BagRepository().GetForUpdate(ctx, c.BagID())
	if err != nil {
		return err
	}

	if err = h.policy.CheckResize(b, c, command.Dimensions().Volume()); err != nil {
		return err
	}

	if err = c.Resize(command.Dimensions()); err != nil {
		return err
	}

	if err = cuboidRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
