package commands

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/guard"
)

var ErrUpdateCuboidCommandIsNotConstructed = errors.New(
	"UpdateCuboidCommand must be created via NewUpdateCuboidCommand constructor",
)

// UpdateCuboidCommand represents a request to change the dimensions of a
// stored cuboid.
type UpdateCuboidCommand struct { //nolint:recvcheck //using for validation
	cuboidID   kernel.ID
	dimensions kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewUpdateCuboidCommand creates a command to resize a cuboid.
func NewUpdateCuboidCommand(cuboidID kernel.ID, dimensions kernel.Dimensions) (UpdateCuboidCommand, error) {
	command := UpdateCuboidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCuboidID(cuboidID),
		command.setDimensions(dimensions),
	); err != nil {
		return UpdateCuboidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCuboidCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCuboidCommandIsNotConstructed)
}

func (c UpdateCuboidCommand) CuboidID() kernel.ID {
	return c.cuboidID
}

func (c UpdateCuboidCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

func (c *UpdateCuboidCommand) setCuboidID(cuboidID kernel.ID) error {
	if err := cuboidID.Validate(); err != nil {
		return err
	}

	c.cuboidID = cuboidID
	return nil
}

func (c *UpdateCuboidCommand) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}
