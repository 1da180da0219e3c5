package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrMenuIsNotConstructed is returned when a Menu instance was not created
// through the NewMenu or RestoreMenu factory methods.
var ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

// Menu is the aggregate root of the menu bounded context. A menu bundles
// product lines under one price and one visibility flag.
//
// The display invariant: a menu may be displayed only while its price does not
// exceed the sum of its product line prices. Creation enforces the invariant
// strictly: a request for a displayed menu priced above the sum fails instead
// of being silently hidden. After creation, the only path that hides a menu
// automatically is the product price-change cascade (RefreshProductPrice);
// nothing ever re-displays a menu automatically.
type Menu struct {
	id           kernel.UUID
	name         string
	price        kernel.Price
	displayed    bool
	menuGroupID  kernel.UUID
	menuProducts MenuProducts

	isConstructed bool
}

// NewMenu creates a new Menu with full invariant validation, including the
// price ≤ sum check. Name profanity screening happens in the application layer
// before this constructor is called.
func NewMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	menuProducts MenuProducts,
	displayed bool,
) (*Menu, error) {
	menu := &Menu{
		displayed:     displayed,
		isConstructed: true,
	}

	if err := errors.Join(
		menu.setID(id),
		menu.setName(name),
		menu.setPrice(price),
		menu.setMenuGroupID(menuGroupID),
		menu.setMenuProducts(menuProducts),
	); err != nil {
		return nil, err
	}

	if err := menu.validatePriceAgainstSum(price); err != nil {
		return nil, err
	}

	return menu, nil
}

// RestoreMenu reconstructs a Menu from persistence. Unlike NewMenu it does not
// enforce price ≤ sum: a menu whose invariant was violated by a product price
// change may legitimately exist persisted, as long as it is hidden.
func RestoreMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	menuProducts MenuProducts,
	displayed bool,
) (*Menu, error) {
	menu := &Menu{
		displayed:     displayed,
		isConstructed: true,
	}

	if err := errors.Join(
		menu.setID(id),
		menu.setName(name),
		menu.setPrice(price),
		menu.setMenuGroupID(menuGroupID),
		menu.setMenuProducts(menuProducts),
	); err != nil {
		return nil, err
	}

	return menu, nil
}

// Validate ensures the Menu was constructed via NewMenu or RestoreMenu.
func (m *Menu) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuIsNotConstructed
	}
	return nil
}

// IsEqual compares two menus by identifier.
func (m *Menu) IsEqual(other *Menu) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu's unique identifier.
func (m *Menu) ID() kernel.UUID {
	return m.id
}

// Name returns the menu name.
func (m *Menu) Name() string {
	return m.name
}

// Price returns the menu price.
func (m *Menu) Price() kernel.Price {
	return m.price
}

// IsDisplayed reports whether the menu is currently visible to customers.
func (m *Menu) IsDisplayed() bool {
	return m.displayed
}

// MenuGroupID returns the identifier of the group the menu belongs to.
func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

// MenuProducts returns the menu's product lines.
func (m *Menu) MenuProducts() MenuProducts {
	return m.menuProducts
}

// Sum returns the current sum of the menu's product line prices.
func (m *Menu) Sum() (kernel.Price, error) {
	return m.menuProducts.Sum()
}

// ChangePrice replaces the menu price. The new price must be constructed and
// must not exceed the current sum of product line prices. The display flag is
// left untouched.
func (m *Menu) ChangePrice(newPrice kernel.Price) error {
	if err := newPrice.Validate(); err != nil {
		return err
	}

	if err := m.validatePriceAgainstSum(newPrice); err != nil {
		return err
	}

	m.price = newPrice
	return nil
}

// Display makes the menu visible. A menu priced above the current sum of its
// product lines cannot be displayed.
func (m *Menu) Display() error {
	if err := m.validatePriceAgainstSum(m.price); err != nil {
		return err
	}

	m.displayed = true
	return nil
}

// Hide makes the menu invisible. Hiding always succeeds.
func (m *Menu) Hide() {
	m.displayed = false
}

// RefreshProductPrice is the cascade entry point for a product price change.
// It updates the price copy on every line referencing the product, recomputes
// the sum, and hides a displayed menu whose price now exceeds it.
//
// The method is idempotent: re-applying the same final price changes nothing
// the second time. A menu with no lines referencing the product is a no-op,
// not an error.
func (m *Menu) RefreshProductPrice(productID kernel.UUID, newPrice kernel.Price) (bool, error) {
	changed, err := m.menuProducts.ChangeProductPrice(productID, newPrice)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	sum, err := m.menuProducts.Sum()
	if err != nil {
		return false, err
	}

	if m.displayed && m.price.GreaterThan(sum) {
		m.Hide()
	}

	return true, nil
}

func (m *Menu) validatePriceAgainstSum(price kernel.Price) error {
	sum, err := m.menuProducts.Sum()
	if err != nil {
		return err
	}

	if price.GreaterThan(sum) {
		return errs.NewValueIsInvalidErrorWithCause(
			"menu price",
			fmt.Errorf("%s is greater than the sum of menu product prices %s", price, sum),
		)
	}

	return nil
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("menu name")
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Menu) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu group", err)
	}
	m.menuGroupID = menuGroupID
	return nil
}

func (m *Menu) setMenuProducts(menuProducts MenuProducts) error {
	if len(menuProducts.items) == 0 {
		return errs.NewValueIsRequiredError("menu products")
	}
	m.menuProducts = menuProducts
	return nil
}
