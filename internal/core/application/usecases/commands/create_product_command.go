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
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrNameIsRequired = fmt.Errorf("%w: name is required", errs.ErrValueIsRequired)
)

// CreateProductCommand represents a request to register a new product in the
// catalog. The product name is screened for profanity by the handler before
// the product is persisted.
//
// Example:
//
//	productID := kernel.NewUUID()
//	price, _ := kernel.NewPrice(16000)
//	cmd, err := NewCreateProductCommand(productID, "Fried chicken", price)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory, profanityChecker)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Validates that the product ID is valid, the name is not blank, and the price
// is a constructed non-negative price. Returns an error if any validation fails.
func NewCreateProductCommand(productID kernel.UUID, name string, price kernel.Price) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product price.
func (c CreateProductCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
