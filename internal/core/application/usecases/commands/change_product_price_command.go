package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand represents a request to change the price of an
// existing product. A successful change triggers the asynchronous menu
// re-validation cascade.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	newPrice  kernel.Price

	guard guard.ConstructorGuard
}

// NewChangeProductPriceCommand creates a command to change a product's price.
// Validates that the product ID is valid and the new price is a constructed
// non-negative price.
func NewChangeProductPriceCommand(productID kernel.UUID, newPrice kernel.Price) (ChangeProductPriceCommand, error) {
	command := ChangeProductPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setNewPrice(newPrice),
	); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeProductPriceCommandIsNotConstructed if validation fails.
func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to reprice.
func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

// NewPrice returns the price to set.
func (c ChangeProductPriceCommand) NewPrice() kernel.Price {
	return c.newPrice
}

func (c *ChangeProductPriceCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *ChangeProductPriceCommand) setNewPrice(newPrice kernel.Price) error {
	if err := newPrice.Validate(); err != nil {
		return err
	}

	c.newPrice = newPrice
	return nil
}
