package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// ErrNameContainsProfanity is returned when the external screening service
// flags a customer-facing name. It wraps errs.ErrValueIsInvalid: a profane
// name is a validation rejection like any other bad input.
var ErrNameContainsProfanity = fmt.Errorf("%w: name contains profanity", errs.ErrValueIsInvalid)

// CreateProductCommandHandler handles the business logic for product creation.
// Screens the product name through the external profanity service before
// persisting the new product.
type CreateProductCommandHandler struct {
	uowFactory       ProductUoWFactory
	profanityChecker ports.ProfanityChecker
}

// NewCreateProductCommandHandler creates a handler for product creation operations.
// Requires a ProductUoWFactory for transactional persistence and a ProfanityChecker
// for name screening.
func NewCreateProductCommandHandler(
	uowFactory ProductUoWFactory,
	profanityChecker ports.ProfanityChecker,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory:       uowFactory,
		profanityChecker: profanityChecker,
	}
}

// Handle processes the product creation command.
// The profanity check runs before the transaction opens so a rejected name
// never touches the database.
func (h CreateProductCommandHandler) Handle(ctx context.Context, command CreateProductCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	profane, err := h.profanityChecker.ContainsProfanity(ctx, command.Name())
	if err != nil {
		return err
	}
	if profane {
		return ErrNameContainsProfanity
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := product.NewProduct(command.ProductID(), command.Name(), command.Price())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
