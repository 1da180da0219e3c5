package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDisplayMenuCommandIsNotConstructed = errors.New(
	"DisplayMenuCommand must be created via NewDisplayMenuCommand constructor",
)

// DisplayMenuCommand represents a request to make a menu visible to customers.
// Displaying re-checks the price ≤ sum invariant against current line prices.
type DisplayMenuCommand struct { //nolint:recvcheck //using for validation
	menuID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDisplayMenuCommand creates a command to display a menu.
func NewDisplayMenuCommand(menuID kernel.UUID) (DisplayMenuCommand, error) {
	command := DisplayMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMenuID(menuID); err != nil {
		return DisplayMenuCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DisplayMenuCommand) Validate() error {
	return c.guard.Validate(ErrDisplayMenuCommandIsNotConstructed)
}

// MenuID returns the identifier of the menu to display.
func (c DisplayMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c *DisplayMenuCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}

	c.menuID = menuID
	return nil
}
