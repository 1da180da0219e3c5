// Package ordertable contains the order table aggregate used by dine-in
// orders. Tables are referenced, not owned, by orders; completing a dine-in
// order releases its table for the next party.
package ordertable

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrOrderTableIsNotConstructed is returned when an OrderTable was not created
// through the NewOrderTable factory method.
var ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable constructor")

// OrderTable is a physical table with a seating state and guest count.
type OrderTable struct {
	id             kernel.UUID
	name           string
	numberOfGuests int
	occupied       bool

	isConstructed bool
}

// NewOrderTable creates an empty table with zero guests.
func NewOrderTable(id kernel.UUID, name string) (*OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("order table name")
	}

	return &OrderTable{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreOrderTable reconstructs a table from persistence.
func RestoreOrderTable(id kernel.UUID, name string, numberOfGuests int, occupied bool) (*OrderTable, error) {
	table, err := NewOrderTable(id, name)
	if err != nil {
		return nil, err
	}
	if numberOfGuests < 0 {
		return nil, errs.NewValueIsOutOfRangeErrorWithCause(
			"number of guests", numberOfGuests, 0, int(^uint(0)>>1),
			fmt.Errorf("%d is negative", numberOfGuests),
		)
	}

	table.numberOfGuests = numberOfGuests
	table.occupied = occupied
	return table, nil
}

// Validate ensures the OrderTable was constructed via NewOrderTable.
func (t *OrderTable) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrOrderTableIsNotConstructed
	}
	return nil
}

// ID returns the table's unique identifier.
func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

// Name returns the table name.
func (t *OrderTable) Name() string {
	return t.name
}

// NumberOfGuests returns the current guest count.
func (t *OrderTable) NumberOfGuests() int {
	return t.numberOfGuests
}

// IsOccupied reports whether the table is currently seated.
func (t *OrderTable) IsOccupied() bool {
	return t.occupied
}

// Occupy seats a party at the table.
func (t *OrderTable) Occupy(numberOfGuests int) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"number of guests", numberOfGuests, 0, int(^uint(0)>>1),
			fmt.Errorf("%d is negative", numberOfGuests),
		)
	}

	t.numberOfGuests = numberOfGuests
	t.occupied = true
	return nil
}

// Release clears the table after the order completes, making it available
// for a new party.
func (t *OrderTable) Release() {
	t.numberOfGuests = 0
	t.occupied = false
}
