package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a request to record that the courier has
// handed a delivery order over to the customer.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark an order delivered.
func NewMarkDeliveredCommand(orderID kernel.UUID) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark delivered.
func (c MarkDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
