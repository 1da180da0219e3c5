package order

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through one of the factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewDineInOrder, NewTakeoutOrder, or NewDeliveryOrder")

// Order is the aggregate root for the order lifecycle. It combines the type
// variant (dine-in, takeout, delivery) with the status state machine; the
// variant restricts which transitions and operations are legal.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and at least one line item
//   - Dine-in orders reference an order table; delivery orders carry a
//     non-blank delivery address
//   - Status transitions follow the rules in Status, parameterized by Type
//   - Delivery-only operations fail with a capability error on other
//     variants regardless of status
type Order struct {
	id        kernel.UUID
	orderType Type
	status    Status
	lineItems LineItems

	// tableID is set for dine-in orders only
	tableID *kernel.UUID

	// deliveryAddress is set for delivery orders only
	deliveryAddress string

	isConstructed bool
}

// NewDineInOrder creates a dine-in order in Waiting status referencing an
// order table.
func NewDineInOrder(id kernel.UUID, lineItems LineItems, tableID kernel.UUID) (*Order, error) {
	if err := tableID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("order table", err)
	}

	o, err := newOrder(id, DineIn, lineItems)
	if err != nil {
		return nil, err
	}

	o.tableID = &tableID
	return o, nil
}

// NewTakeoutOrder creates a takeout order in Waiting status.
func NewTakeoutOrder(id kernel.UUID, lineItems LineItems) (*Order, error) {
	return newOrder(id, Takeout, lineItems)
}

// NewDeliveryOrder creates a delivery order in Waiting status with a
// non-blank delivery address.
func NewDeliveryOrder(id kernel.UUID, lineItems LineItems, deliveryAddress string) (*Order, error) {
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, errs.NewValueIsRequiredError("delivery address")
	}

	o, err := newOrder(id, Delivery, lineItems)
	if err != nil {
		return nil, err
	}

	o.deliveryAddress = deliveryAddress
	return o, nil
}

func newOrder(id kernel.UUID, orderType Type, lineItems LineItems) (*Order, error) {
	o := &Order{
		orderType:     orderType,
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	orderType Type,
	status Status,
	lineItems LineItems,
	tableID *kernel.UUID,
	deliveryAddress string,
) (*Order, error) {
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := newOrder(id, orderType, lineItems)
	if err != nil {
		return nil, err
	}

	o.status = status

	switch orderType {
	case DineIn:
		if tableID == nil {
			return nil, errs.NewValueIsRequiredError("order table")
		}
		if err = tableID.Validate(); err != nil {
			return nil, err
		}
		o.tableID = tableID
	case Delivery:
		if strings.TrimSpace(deliveryAddress) == "" {
			return nil, errs.NewValueIsRequiredError("delivery address")
		}
		o.deliveryAddress = deliveryAddress
	}

	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Type returns the order type variant.
func (o *Order) Type() Type {
	return o.orderType
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns the order's line item snapshots.
func (o *Order) LineItems() LineItems {
	return o.lineItems
}

// TableID returns the referenced order table for dine-in orders, nil otherwise.
func (o *Order) TableID() *kernel.UUID {
	return o.tableID
}

// DeliveryAddress returns the delivery address for delivery orders,
// the empty string otherwise.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Accept moves the order from Waiting to Accepted. For delivery orders the
// caller must have successfully dispatched the courier first; a failed
// dispatch must leave the order in Waiting, which is why dispatching is not
// performed here.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Serve moves the order from Accepted to Served.
func (o *Order) Serve() error {
	newStatus, err := o.status.Serve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartDelivering moves a delivery order from Served to Delivering.
// On non-delivery variants it fails with a capability error regardless of the
// current status: the restriction is on the order type, not the state machine.
func (o *Order) StartDelivering() error {
	if !o.orderType.SupportsDelivering() {
		return errs.NewCapabilityNotSupportedError("start delivering", o.orderType.String())
	}

	newStatus, err := o.status.StartDelivering()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered moves a delivery order from Delivering to Delivered.
// Fails with a capability error on non-delivery variants regardless of status.
func (o *Order) MarkDelivered() error {
	if !o.orderType.SupportsDelivering() {
		return errs.NewCapabilityNotSupportedError("mark delivered", o.orderType.String())
	}

	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves the order to the terminal Completed status. Delivery orders
// complete from Delivered; dine-in and takeout complete from Served. For
// dine-in orders the caller must release the referenced order table as part of
// the same unit of work.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete(o.orderType.CompletesFrom())
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLineItems(lineItems LineItems) error {
	if len(lineItems.items) == 0 {
		return errs.NewValueIsRequiredError("order line items")
	}
	o.lineItems = lineItems
	return nil
}
