package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired     = fmt.Errorf("%w: at least one order line is required", errs.ErrValueIsRequired)
	ErrOrderTableIsRequired      = fmt.Errorf("%w: order table is required for dine-in orders", errs.ErrValueIsRequired)
	ErrDeliveryAddressIsRequired = fmt.Errorf("%w: delivery address is required for delivery orders", errs.ErrValueIsRequired)
)

// OrderLine is one requested menu inside an order creation request. Price is
// the price the customer saw when ordering; the handler rejects the order if
// it no longer matches the menu's current price.
type OrderLine struct {
	MenuID   kernel.UUID
	Price    kernel.Price
	Quantity int64
}

// CreateOrderCommand represents a request to create a new order of any
// variant. Dine-in orders reference an order table, delivery orders carry a
// delivery address, takeout orders need neither.
//
// Example:
//
//	price, _ := kernel.NewPrice(19000)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.Delivery,
//	    []OrderLine{{MenuID: menuID, Price: price, Quantity: 1}},
//	    nil, "221B Baker Street")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderType       order.Type
	orderLines      []OrderLine
	tableID         *kernel.UUID
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the identifiers, the order type, the order lines, and the
// variant-specific fields: a dine-in order must reference a table, a delivery
// order must carry a non-blank address.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	orderLines []OrderLine,
	tableID *kernel.UUID,
	deliveryAddress string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOrderType(orderType),
		command.setOrderLines(orderLines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := command.setVariantFields(orderType, tableID, deliveryAddress); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns the requested order variant.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// OrderLines returns the requested order lines in insertion order.
func (c CreateOrderCommand) OrderLines() []OrderLine {
	lines := make([]OrderLine, len(c.orderLines))
	copy(lines, c.orderLines)
	return lines
}

// TableID returns the referenced order table for dine-in orders, nil otherwise.
func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

// DeliveryAddress returns the delivery address for delivery orders,
// the empty string otherwise.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setOrderLines(orderLines []OrderLine) error {
	if len(orderLines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range orderLines {
		if err := line.MenuID.Validate(); err != nil {
			return err
		}
		if err := line.Price.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError("order line quantity", line.Quantity, 1, int64(1)<<62)
		}
	}

	c.orderLines = make([]OrderLine, len(orderLines))
	copy(c.orderLines, orderLines)
	return nil
}

func (c *CreateOrderCommand) setVariantFields(orderType order.Type, tableID *kernel.UUID, deliveryAddress string) error {
	switch orderType {
	case order.DineIn:
		if tableID == nil {
			return ErrOrderTableIsRequired
		}
		if err := tableID.Validate(); err != nil {
			return err
		}
		c.tableID = tableID
	case order.Delivery:
		if strings.TrimSpace(deliveryAddress) == "" {
			return ErrDeliveryAddressIsRequired
		}
		c.deliveryAddress = deliveryAddress
	}

	return nil
}
