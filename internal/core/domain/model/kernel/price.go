package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrPriceIsNotConstructed indicates that a Price was not created via NewPrice.
// It is returned when validating a zero-value Price.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

// Price is a value object representing a non-negative amount of money in minor
// currency units. It is used both for product and menu prices and for the
// immutable price snapshots captured inside order line items.
//
// A zero amount is a valid price; the zero value of the struct is not. Price
// must be created via NewPrice so that negative amounts can never enter the
// domain model.
type Price struct {
	amount int64

	guard guard.ConstructorGuard
}

// NewPrice creates a Price from an amount in minor currency units.
// Returns a ValueIsOutOfRangeError for amounts below zero or above the bound.
func NewPrice(amount int64) (Price, error) {
	if amount < 0 || amount > maxPriceAmount {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount, 0, maxPriceAmount)
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// maxPriceAmount bounds every price amount. Keeping amounts at or below 2^62
// makes the overflow guards in Add and MultiplyBy exact: the sum check
// maxPriceAmount-other never underflows and the product check divides instead
// of multiplying.
const maxPriceAmount = int64(1) << 62

// Amount returns the amount in minor currency units.
func (p Price) Amount() int64 {
	return p.amount
}

// Add returns the sum of two prices.
// Fails with a ValueIsOutOfRangeError when the sum would exceed the bound.
func (p Price) Add(other Price) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	if err := other.Validate(); err != nil {
		return Price{}, err
	}
	if p.amount > maxPriceAmount-other.amount {
		return Price{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"price", p.amount, 0, maxPriceAmount,
			fmt.Errorf("adding %d overflows the price bound", other.amount),
		)
	}

	return NewPrice(p.amount + other.amount)
}

// MultiplyBy returns the price multiplied by a non-negative quantity.
// Used to compute a menu product's contribution to the menu sum.
// Fails with a ValueIsOutOfRangeError when the product would exceed the bound.
func (p Price) MultiplyBy(quantity int64) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	if quantity < 0 {
		return Price{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", quantity, 0, maxPriceAmount,
			fmt.Errorf("%d is negative", quantity),
		)
	}
	if quantity > 0 && p.amount > maxPriceAmount/quantity {
		return Price{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"price", p.amount, 0, maxPriceAmount,
			fmt.Errorf("multiplying by %d overflows the price bound", quantity),
		)
	}

	return NewPrice(p.amount * quantity)
}

// GreaterThan reports whether p is strictly greater than other.
func (p Price) GreaterThan(other Price) bool {
	return p.amount > other.amount
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String returns the amount as a decimal string, for error messages and logs.
func (p Price) String() string {
	return fmt.Sprintf("%d", p.amount)
}

// Validate checks that the Price was created via NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
