package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrChangeMenuPriceCommandIsNotConstructed = errors.New(
	"ChangeMenuPriceCommand must be created via NewChangeMenuPriceCommand constructor",
)

// ChangeMenuPriceCommand represents a request to change the price of an
// existing menu. The new price is validated against the sum of the menu's
// product lines regardless of display state.
type ChangeMenuPriceCommand struct { //nolint:recvcheck //using for validation
	menuID   kernel.UUID
	newPrice kernel.Price

	guard guard.ConstructorGuard
}

// NewChangeMenuPriceCommand creates a command to change a menu's price.
func NewChangeMenuPriceCommand(menuID kernel.UUID, newPrice kernel.Price) (ChangeMenuPriceCommand, error) {
	command := ChangeMenuPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMenuID(menuID),
		command.setNewPrice(newPrice),
	); err != nil {
		return ChangeMenuPriceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeMenuPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeMenuPriceCommandIsNotConstructed)
}

// MenuID returns the identifier of the menu to reprice.
func (c ChangeMenuPriceCommand) MenuID() kernel.UUID {
	return c.menuID
}

// NewPrice returns the price to set.
func (c ChangeMenuPriceCommand) NewPrice() kernel.Price {
	return c.newPrice
}

func (c *ChangeMenuPriceCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}

	c.menuID = menuID
	return nil
}

func (c *ChangeMenuPriceCommand) setNewPrice(newPrice kernel.Price) error {
	if err := newPrice.Validate(); err != nil {
		return err
	}

	c.newPrice = newPrice
	return nil
}
