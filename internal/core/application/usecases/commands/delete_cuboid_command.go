package commands

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/guard"
)

var ErrDeleteCuboidCommandIsNotConstructed = errors.New(
	"DeleteCuboidCommand must be created via NewDeleteCuboidCommand constructor",
)

// DeleteCuboidCommand represents a request to remove a cuboid from its bag.
type DeleteCuboidCommand struct { //nolint:recvcheck //using for validation
	cuboidID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteCuboidCommand(cuboidID kernel.ID) (DeleteCuboidCommand, error) {
	if err := cuboidID.Validate(); err != nil {
		return DeleteCuboidCommand{}, err
	}

	return DeleteCuboidCommand{
		cuboidID: cuboidID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCuboidCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCuboidCommandIsNotConstructed)
}

func (c DeleteCuboidCommand) CuboidID() kernel.ID {
	return c.cuboidID
}
