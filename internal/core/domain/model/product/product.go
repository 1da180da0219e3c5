package product

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the catalog aggregate root. Products are referenced, never owned,
// by menus: a menu line carries a copy of the product price taken when the menu
// was built, and the price-change cascade keeps those copies consistent.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Name must be non-blank (profanity screening happens in the application
//     layer, where the external checker is available)
//   - Price must be a constructed, non-negative Price
type Product struct {
	id    kernel.UUID
	name  string
	price kernel.Price

	isConstructed bool
}

// NewProduct creates a new Product with validation. This is the only way to
// create a valid Product.
func NewProduct(id kernel.UUID, name string, price kernel.Price) (*Product, error) {
	product := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence without re-running
// creation-time checks that need external collaborators.
func RestoreProduct(id kernel.UUID, name string, price kernel.Price) (*Product, error) {
	return NewProduct(id, name, price)
}

// Validate ensures the Product was constructed via NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current product price.
func (p *Product) Price() kernel.Price {
	return p.price
}

// ChangePrice replaces the product price and returns the PriceChanged event to
// publish once the change has been durably committed. The event carries the new
// price for observability, but consumers re-read the stored price so that
// duplicate or reordered deliveries stay correct.
func (p *Product) ChangePrice(newPrice kernel.Price) (PriceChanged, error) {
	if err := newPrice.Validate(); err != nil {
		return PriceChanged{}, err
	}

	p.price = newPrice
	return NewPriceChanged(p.id, newPrice), nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

// PriceChanged is the domain event raised after a product price change.
// It is published to the message broker after the owning transaction commits
// and drives the asynchronous menu re-validation cascade.
type PriceChanged struct {
	ProductID  kernel.UUID
	NewPrice   kernel.Price
	OccurredAt time.Time
}

// NewPriceChanged creates a PriceChanged event stamped with the current time.
func NewPriceChanged(productID kernel.UUID, newPrice kernel.Price) PriceChanged {
	return PriceChanged{
		ProductID:  productID,
		NewPrice:   newPrice,
		OccurredAt: time.Now().UTC(),
	}
}
