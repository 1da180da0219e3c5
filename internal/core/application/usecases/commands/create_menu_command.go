package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateMenuCommandIsNotConstructed = errors.New(
		"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
	)
	ErrProductLinesAreRequired = fmt.Errorf("%w: at least one product line is required", errs.ErrValueIsRequired)
)

// ProductLine is one product reference inside a menu creation request: which
// product and how many units of it the menu bundles. Quantity zero is legal
// (a free extra listed on the menu).
type ProductLine struct {
	ProductID kernel.UUID
	Quantity  int64
}

// CreateMenuCommand represents a request to create a new menu. The menu name
// is screened for profanity by the handler, the menu group and every
// referenced product must resolve, and the menu price may not exceed the sum
// of its product lines.
//
// Example:
//
//	price, _ := kernel.NewPrice(19000)
//	cmd, err := NewCreateMenuCommand(kernel.NewUUID(), "Fried chicken set", price,
//	    groupID, true, []ProductLine{{ProductID: chickenID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid menu data: %w", err)
//	}
//
//	handler := NewCreateMenuCommandHandler(uowFactory, profanityChecker)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create menu: %w", err)
//	}
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID       kernel.UUID
	name         string
	price        kernel.Price
	menuGroupID  kernel.UUID
	displayed    bool
	productLines []ProductLine

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to register a new menu.
// Validates identifiers, the price, and that there is at least one product
// line with a valid product ID and a non-negative quantity.
func NewCreateMenuCommand(
	menuID kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	displayed bool,
	productLines []ProductLine,
) (CreateMenuCommand, error) {
	command := CreateMenuCommand{
		displayed: displayed,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setMenuID(menuID),
		command.setName(name),
		command.setPrice(price),
		command.setMenuGroupID(menuGroupID),
		command.setProductLines(productLines),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMenuCommandIsNotConstructed if validation fails.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

// MenuID returns the unique identifier for the menu.
func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

// Name returns the menu name.
func (c CreateMenuCommand) Name() string {
	return c.name
}

// Price returns the menu price.
func (c CreateMenuCommand) Price() kernel.Price {
	return c.price
}

// MenuGroupID returns the identifier of the menu group the menu belongs to.
func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// Displayed reports whether the menu should be visible to customers right away.
func (c CreateMenuCommand) Displayed() bool {
	return c.displayed
}

// ProductLines returns the requested product lines in insertion order.
func (c CreateMenuCommand) ProductLines() []ProductLine {
	lines := make([]ProductLine, len(c.productLines))
	copy(lines, c.productLines)
	return lines
}

func (c *CreateMenuCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}

	c.menuID = menuID
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}

	c.menuGroupID = menuGroupID
	return nil
}

func (c *CreateMenuCommand) setProductLines(productLines []ProductLine) error {
	if len(productLines) == 0 {
		return ErrProductLinesAreRequired
	}

	for _, line := range productLines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 0 {
			return errs.NewValueIsOutOfRangeError("product line quantity", line.Quantity, 0, int64(1)<<62)
		}
	}

	c.productLines = make([]ProductLine, len(productLines))
	copy(c.productLines, productLines)
	return nil
}
