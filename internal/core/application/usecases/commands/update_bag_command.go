package commands

import (
	"errors"
	"strings"

	"cuboids/internal/core/domain/model/kernel"
	"cuboids/internal/pkg/errs"
	"cuboids/internal/pkg/guard"
)

var (
	ErrUpdateBagCommandIsNotConstructed = errors.New(
		"UpdateBagCommand must be created via NewUpdateBagCommand constructor",
	)
	ErrNothingToUpdate = errors.New("nothing to update")
)

// UpdateBagCommand represents a partial change of a bag. A nil title or
// volume leaves that attribute unchanged.
//
// Example:
//
//	volume := 50.0
//	cmd, err := NewUpdateBagCommand(bagID, nil, &volume)
type UpdateBagCommand struct { //nolint:recvcheck //using for validation
	bagID  kernel.ID
	title  *string
	volume *float64

	guard guard.ConstructorGuard
}

// NewUpdateBagCommand creates a command to rename and/or resize a bag.
// At least one of title and volume must be set.
func NewUpdateBagCommand(bagID kernel.ID, title *string, volume *float64) (UpdateBagCommand, error) {
	command := UpdateBagCommand{
		volume: volume,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBagID(bagID),
		command.setTitle(title),
	); err != nil {
		return UpdateBagCommand{}, err
	}

	if title == nil && volume == nil {
		return UpdateBagCommand{}, errs.NewValueIsRequiredErrorWithCause("title or volume", ErrNothingToUpdate)
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBagCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBagCommandIsNotConstructed)
}

func (c UpdateBagCommand) BagID() kernel.ID {
	return c.bagID
}

// Title returns the new title and whether one was given.
func (c UpdateBagCommand) Title() (string, bool) {
	if c.title == nil {
		return "", false
	}
	return *c.title, true
}

// Volume returns the new volume and whether one was given.
func (c UpdateBagCommand) Volume() (float64, bool) {
	if c.volume == nil {
		return 0, false
	}
	return *c.volume, true
}

func (c *UpdateBagCommand) setBagID(bagID kernel.ID) error {
	if err := bagID.Validate(); err != nil {
		return err
	}

	c.bagID = bagID
	return nil
}

func (c *UpdateBagCommand) setTitle(title *string) error {
	if title == nil {
		return nil
	}
	if strings.TrimSpace(*title) == "" {
		return errs.NewValueIsRequiredError("title")
	}

	t := *title
	c.title = &t
	return nil
}
