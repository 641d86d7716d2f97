package commands

import (
	"context"

	"cuboids/internal/core/domain/model/cuboid"
	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/core/domain/services"
)

// CreateCuboidCommandHandler places new cuboids in bags.
//
// Example:
//
//	handler := NewCreateCuboidCommandHandler(uowFactory, services.NewCapacityPolicy(services.UpdateModeLegacy))
//	id, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // bag does not exist
//	case errors.Is(err, services.ErrInsufficientCapacity):
//	    // bag is too full
//	}
type CreateCuboidCommandHandler struct {
	uowFactory UoWFactory
	policy     services.CapacityPolicy
}

// NewCreateCuboidCommandHandler creates a handler for cuboid creation.
func NewCreateCuboidCommandHandler(uowFactory UoWFactory, policy services.CapacityPolicy) CreateCuboidCommandHandler {
	return CreateCuboidCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle locks the target bag, checks that the new cuboid fits and stores it.
// Returns the ID of the stored cuboid.
func (h CreateCuboidCommandHandler) Handle(ctx context.Context, command CreateCuboidCommand) (kernel.ID, error) {
	if err := command.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	b, err := uow.BagRepository().GetForUpdate(ctx, command.BagID())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = h.policy.CheckPlacement(b, command.Dimensions().Volume()); err != nil {
		return kernel.ID{}, err
	}

	c, err := cuboid.NewCuboid(b.ID(), command.Dimensions())
	if err != nil {
		return kernel.ID{}, err
	}

	stored, err := uow.CuboidRepository().Add(ctx, c)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return stored.ID(), nil
}
