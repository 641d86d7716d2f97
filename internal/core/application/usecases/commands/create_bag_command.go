package commands

import (
	"errors"
	"strings"

	"cuboids/internal/pkg/errs"
	"cuboids/internal/pkg/guard"
)

var ErrCreateBagCommandIsNotConstructed = errors.New(
	"CreateBagCommand must be created via NewCreateBagCommand constructor",
)

// CreateBagCommand represents a request to register a new bag.
//
// Example:
//
//	cmd, err := NewCreateBagCommand("Hiking backpack", 100)
//	if err != nil {
//	    return fmt.Errorf("invalid bag data: %w", err)
//	}
//	id, err := NewCreateBagCommandHandler(uowFactory).Handle(ctx, cmd)
type CreateBagCommand struct { //nolint:recvcheck //using for validation
	title  string
	volume float64

	guard guard.ConstructorGuard
}

// NewCreateBagCommand creates a command to register a bag.
// The title must not be blank. Volume is checked by the bag model.
func NewCreateBagCommand(title string, volume float64) (CreateBagCommand, error) {
	command := CreateBagCommand{
		volume: volume,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setTitle(title); err != nil {
		return CreateBagCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBagCommand) Validate() error {
	return c.guard.Validate(ErrCreateBagCommandIsNotConstructed)
}

func (c CreateBagCommand) Title() string {
	return c.title
}

func (c CreateBagCommand) Volume() float64 {
	return c.volume
}

func (c *CreateBagCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}
