package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a request to accept a waiting order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an order.
func NewAcceptOrderCommand(orderID kernel.UUID) (AcceptOrderCommand, error) {
	command := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return AcceptOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
