package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrServeOrderCommandIsNotConstructed = errors.New(
	"ServeOrderCommand must be created via NewServeOrderCommand constructor",
)

// ServeOrderCommand represents a request to mark an accepted order as served.
type ServeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewServeOrderCommand creates a command to serve an order.
func NewServeOrderCommand(orderID kernel.UUID) (ServeOrderCommand, error) {
	command := ServeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ServeOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ServeOrderCommand) Validate() error {
	return c.guard.Validate(ErrServeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to serve.
func (c ServeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ServeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
