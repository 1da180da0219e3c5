package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrOccupyOrderTableCommandIsNotConstructed = errors.New(
	"OccupyOrderTableCommand must be created via NewOccupyOrderTableCommand constructor",
)

// OccupyOrderTableCommand represents a request to seat a party at a table.
type OccupyOrderTableCommand struct { //nolint:recvcheck //using for validation
	orderTableID   kernel.UUID
	numberOfGuests int

	guard guard.ConstructorGuard
}

// NewOccupyOrderTableCommand creates a command to seat a party at a table.
func NewOccupyOrderTableCommand(orderTableID kernel.UUID, numberOfGuests int) (OccupyOrderTableCommand, error) {
	command := OccupyOrderTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderTableID(orderTableID),
		command.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return OccupyOrderTableCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OccupyOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrOccupyOrderTableCommandIsNotConstructed)
}

// OrderTableID returns the unique identifier for the order table.
func (c OccupyOrderTableCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// NumberOfGuests returns the size of the seated party.
func (c OccupyOrderTableCommand) NumberOfGuests() int {
	return c.numberOfGuests
}

func (c *OccupyOrderTableCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}

	c.orderTableID = orderTableID
	return nil
}

func (c *OccupyOrderTableCommand) setNumberOfGuests(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsOutOfRangeError("number of guests", numberOfGuests, 0, int(^uint(0)>>1))
	}

	c.numberOfGuests = numberOfGuests
	return nil
}
