package commands

import (
	"context"
)

// ChangeMenuPriceCommandHandler handles the business logic for menu price changes.
type ChangeMenuPriceCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewChangeMenuPriceCommandHandler creates a handler for menu price change operations.
func NewChangeMenuPriceCommandHandler(uowFactory MenuUoWFactory) ChangeMenuPriceCommandHandler {
	return ChangeMenuPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu price change command.
// A price above the sum of the menu's product lines fails validation and
// leaves the persisted menu untouched.
func (h ChangeMenuPriceCommandHandler) Handle(ctx context.Context, command ChangeMenuPriceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()

	aggregate, err := menuRepo.Get(ctx, command.MenuID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangePrice(command.NewPrice()); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
