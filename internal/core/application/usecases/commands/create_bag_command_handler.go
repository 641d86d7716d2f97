package commands

import (
	"context"

	"cuboids/internal/core/domain/model/bag"
	"cuboids/internal/core/domain/model/kernel"
)

// CreateBagCommandHandler registers new, empty bags.
type CreateBagCommandHandler struct {
	uowFactory BagUoWFactory
}

// NewCreateBagCommandHandler creates a handler for bag creation.
// Requires a BagUoWFactory for transactional persistence.
func NewCreateBagCommandHandler(uowFactory BagUoWFactory) CreateBagCommandHandler {
	return CreateBagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the bag and returns its ID.
func (h CreateBagCommandHandler) Handle(ctx context.Context, command CreateBagCommand) (kernel.ID, error) {
	if err := command.Validate(); err != nil {
		return kernel.ID{}, err
	}

	b, err := bag.NewBag(command.Title(), command.Volume())
	if err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.BagRepository().Add(ctx, b)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return stored.ID(), nil
}
