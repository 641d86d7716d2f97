package commands

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/guard"
)

var ErrDeleteBagCommandIsNotConstructed = errors.New(
	"DeleteBagCommand must be created via NewDeleteBagCommand constructor",
)

// DeleteBagCommand represents a request to remove a bag and everything in it.
type DeleteBagCommand struct { //nolint:recvcheck //using for validation
	bagID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteBagCommand(bagID kernel.ID) (DeleteBagCommand, error) {
	if err := bagID.Validate(); err != nil {
		return DeleteBagCommand{}, err
	}

	return DeleteBagCommand{
		bagID: bagID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteBagCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBagCommandIsNotConstructed)
}

func (c DeleteBagCommand) BagID() kernel.ID {
	return c.bagID
}
