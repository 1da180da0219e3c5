package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderTableCommandIsNotConstructed = errors.New(
	"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
)

// CreateOrderTableCommand represents a request to register a new order table.
// New tables start vacant; dine-in orders require an occupied table.
type CreateOrderTableCommand struct { //nolint:recvcheck //using for validation
	orderTableID kernel.UUID
	name         string

	guard guard.ConstructorGuard
}

// NewCreateOrderTableCommand creates a command to register a new order table.
func NewCreateOrderTableCommand(orderTableID kernel.UUID, name string) (CreateOrderTableCommand, error) {
	command := CreateOrderTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderTableID(orderTableID),
		command.setName(name),
	); err != nil {
		return CreateOrderTableCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

// OrderTableID returns the unique identifier for the order table.
func (c CreateOrderTableCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// Name returns the order table name.
func (c CreateOrderTableCommand) Name() string {
	return c.name
}

func (c *CreateOrderTableCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}

	c.orderTableID = orderTableID
	return nil
}

func (c *CreateOrderTableCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
