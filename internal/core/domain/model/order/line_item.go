package order

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// LineItem is an immutable snapshot of one menu within an order: the menu's
// identifier, its name, the unit price at order time, and the ordered
// quantity. The snapshot is captured when the order is built and never
// re-derived from the live menu, so historical orders keep the price the
// customer actually paid even if the menu changes later.
type LineItem struct {
	menuID   kernel.UUID
	menuName string
	price    kernel.Price
	quantity int64
}

// NewLineItem creates a line item snapshot. Quantity must be at least one.
func NewLineItem(menuID kernel.UUID, menuName string, price kernel.Price, quantity int64) (LineItem, error) {
	if err := menuID.Validate(); err != nil {
		return LineItem{}, err
	}
	if err := price.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"line item quantity", quantity, 1, int64(1)<<62,
			fmt.Errorf("%d is less than 1", quantity),
		)
	}

	return LineItem{
		menuID:   menuID,
		menuName: menuName,
		price:    price,
		quantity: quantity,
	}, nil
}

// MenuID returns the ordered menu's identifier.
func (li LineItem) MenuID() kernel.UUID {
	return li.menuID
}

// MenuName returns the menu name captured at order time.
func (li LineItem) MenuName() string {
	return li.menuName
}

// Price returns the unit price captured at order time.
func (li LineItem) Price() kernel.Price {
	return li.price
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int64 {
	return li.quantity
}

// LineItems is the non-empty, ordered collection of an order's line items.
type LineItems struct {
	items []LineItem
}

// NewLineItems creates the collection. An order must have at least one line item.
func NewLineItems(items []LineItem) (LineItems, error) {
	if len(items) == 0 {
		return LineItems{}, errs.NewValueIsRequiredError("order line items")
	}

	copied := make([]LineItem, len(items))
	copy(copied, items)
	return LineItems{items: copied}, nil
}

// Items returns the line items in insertion order. The returned slice is a copy.
func (lis LineItems) Items() []LineItem {
	items := make([]LineItem, len(lis.items))
	copy(items, lis.items)
	return items
}

// Total computes the order total from the captured snapshots.
func (lis LineItems) Total() (kernel.Price, error) {
	total, err := kernel.NewPrice(0)
	if err != nil {
		return kernel.Price{}, err
	}

	for _, item := range lis.items {
		lineTotal, lineErr := item.price.MultiplyBy(item.quantity)
		if lineErr != nil {
			return kernel.Price{}, lineErr
		}

		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Price{}, err
		}
	}

	return total, nil
}
