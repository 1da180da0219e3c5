package commands

import (
	"context"
)

// DisplayMenuCommandHandler handles the business logic for displaying a menu.
type DisplayMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDisplayMenuCommandHandler creates a handler for menu display operations.
func NewDisplayMenuCommandHandler(uowFactory MenuUoWFactory) DisplayMenuCommandHandler {
	return DisplayMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the display command. Displaying fails when the menu price
// currently exceeds the sum of its product lines.
func (h DisplayMenuCommandHandler) Handle(ctx context.Context, command DisplayMenuCommand) error {
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

	if err = aggregate.Display(); err != nil {
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
