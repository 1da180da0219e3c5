package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a request to move an order to the terminal
// Completed status.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
