package menu

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// MenuProduct is one line of a menu: a reference to a catalog product with the
// quantity offered and a copy of the product's unit price. The copy is what the
// price-change cascade keeps in sync with the catalog; the menu sum is always
// computed from these copies.
type MenuProduct struct {
	productID   kernel.UUID
	productName string
	price       kernel.Price
	quantity    int64
}

// NewMenuProduct creates a menu line. Quantity must be zero or positive.
func NewMenuProduct(productID kernel.UUID, productName string, price kernel.Price, quantity int64) (MenuProduct, error) {
	if err := productID.Validate(); err != nil {
		return MenuProduct{}, err
	}
	if err := price.Validate(); err != nil {
		return MenuProduct{}, err
	}
	if quantity < 0 {
		return MenuProduct{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"menu product quantity", quantity, 0, int64(1)<<62,
			fmt.Errorf("%d is negative", quantity),
		)
	}

	return MenuProduct{
		productID:   productID,
		productName: productName,
		price:       price,
		quantity:    quantity,
	}, nil
}

// ProductID returns the referenced product's identifier.
func (mp MenuProduct) ProductID() kernel.UUID {
	return mp.productID
}

// ProductName returns the product name captured at menu build time.
func (mp MenuProduct) ProductName() string {
	return mp.productName
}

// Price returns the line's unit price copy.
func (mp MenuProduct) Price() kernel.Price {
	return mp.price
}

// Quantity returns the offered quantity.
func (mp MenuProduct) Quantity() int64 {
	return mp.quantity
}

// total returns price × quantity.
func (mp MenuProduct) total() (kernel.Price, error) {
	return mp.price.MultiplyBy(mp.quantity)
}

// MenuProducts is the ordered collection of menu lines. Insertion order does
// not affect the sum but is preserved for display.
type MenuProducts struct {
	items []MenuProduct
}

// NewMenuProducts creates the collection. A menu must offer at least one product.
func NewMenuProducts(items []MenuProduct) (MenuProducts, error) {
	if len(items) == 0 {
		return MenuProducts{}, errs.NewValueIsRequiredError("menu products")
	}

	copied := make([]MenuProduct, len(items))
	copy(copied, items)
	return MenuProducts{items: copied}, nil
}

// Items returns the lines in insertion order. The returned slice is a copy.
func (mps MenuProducts) Items() []MenuProduct {
	items := make([]MenuProduct, len(mps.items))
	copy(items, mps.items)
	return items
}

// Sum computes Σ(price × quantity) over all lines. It is recomputed on every
// call; nothing is cached across product price changes.
func (mps MenuProducts) Sum() (kernel.Price, error) {
	sum, err := kernel.NewPrice(0)
	if err != nil {
		return kernel.Price{}, err
	}

	for _, item := range mps.items {
		total, totalErr := item.total()
		if totalErr != nil {
			return kernel.Price{}, totalErr
		}

		sum, err = sum.Add(total)
		if err != nil {
			return kernel.Price{}, err
		}
	}

	return sum, nil
}

// ChangeProductPrice updates the price copy of every line referencing the given
// product. It reports whether any line actually changed, which makes the
// price-change cascade idempotent: re-applying the same final price is a no-op.
func (mps *MenuProducts) ChangeProductPrice(productID kernel.UUID, newPrice kernel.Price) (bool, error) {
	if err := productID.Validate(); err != nil {
		return false, err
	}
	if err := newPrice.Validate(); err != nil {
		return false, err
	}

	changed := false
	for i := range mps.items {
		if !mps.items[i].productID.IsEqual(productID) {
			continue
		}
		if mps.items[i].price.IsEqual(newPrice) {
			continue
		}

		mps.items[i].price = newPrice
		changed = true
	}

	return changed, nil
}

// ReferencesProduct reports whether any line references the given product.
func (mps MenuProducts) ReferencesProduct(productID kernel.UUID) bool {
	for _, item := range mps.items {
		if item.productID.IsEqual(productID) {
			return true
		}
	}
	return false
}
