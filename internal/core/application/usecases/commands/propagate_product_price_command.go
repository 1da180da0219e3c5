package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrPropagateProductPriceCommandIsNotConstructed = errors.New(
	"PropagateProductPriceCommand must be created via NewPropagateProductPriceCommand constructor",
)

// PropagateProductPriceCommand represents a request to push a product's
// current price into every menu that references it. Dispatched by the price
// change consumer and by the periodic revalidation sweep; the command carries
// only the product ID because the handler re-reads the stored price.
type PropagateProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPropagateProductPriceCommand creates a command to run the price cascade
// for one product.
func NewPropagateProductPriceCommand(productID kernel.UUID) (PropagateProductPriceCommand, error) {
	command := PropagateProductPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProductID(productID); err != nil {
		return PropagateProductPriceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PropagateProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrPropagateProductPriceCommandIsNotConstructed)
}

// ProductID returns the identifier of the product whose price is propagated.
func (c PropagateProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *PropagateProductPriceCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
