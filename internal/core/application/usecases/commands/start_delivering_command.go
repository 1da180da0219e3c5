package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrStartDeliveringCommandIsNotConstructed = errors.New(
	"StartDeliveringCommand must be created via NewStartDeliveringCommand constructor",
)

// StartDeliveringCommand represents a request to hand a served delivery order
// to the courier.
type StartDeliveringCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveringCommand creates a command to start delivering an order.
func NewStartDeliveringCommand(orderID kernel.UUID) (StartDeliveringCommand, error) {
	command := StartDeliveringCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return StartDeliveringCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveringCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveringCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to start delivering.
func (c StartDeliveringCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartDeliveringCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
