package commands

import (
	"errors"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/guard"
)

var ErrCreateCuboidCommandIsNotConstructed = errors.New(
	"CreateCuboidCommand must be created via NewCreateCuboidCommand constructor",
)

// CreateCuboidCommand represents a request to place a new cuboid in a bag.
//
// Example:
//
//	dims, _ := kernel.NewDimensions(2, 5, 10)
//	cmd, err := NewCreateCuboidCommand(kernel.MustNewID(1), dims)
//	if err != nil {
//	    return fmt.Errorf("invalid cuboid data: %w", err)
//	}
//
//	handler := NewCreateCuboidCommandHandler(uowFactory, policy)
//	id, err := handler.Handle(ctx, cmd)
type CreateCuboidCommand struct { //nolint:recvcheck //using for validation
	bagID      kernel.ID
	dimensions kernel.Dimensions

	guard guard.ConstructorGuard
}

// NewCreateCuboidCommand creates a command to place a cuboid in the given bag.
// Validates that the bag ID and dimensions were constructed.
func NewCreateCuboidCommand(bagID kernel.ID, dimensions kernel.Dimensions) (CreateCuboidCommand, error) {
	command := CreateCuboidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBagID(bagID),
		command.setDimensions(dimensions),
	); err != nil {
		return CreateCuboidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCuboidCommand) Validate() error {
	return c.guard.Validate(ErrCreateCuboidCommandIsNotConstructed)
}

// BagID returns the bag the cuboid goes into.
func (c CreateCuboidCommand) BagID() kernel.ID {
	return c.bagID
}

// Dimensions returns the size of the new cuboid.
func (c CreateCuboidCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

func (c *CreateCuboidCommand) setBagID(bagID kernel.ID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}

	c.bagID = bagID
	return nil
}

func (c *CreateCuboidCommand) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}
