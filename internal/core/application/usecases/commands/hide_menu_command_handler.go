package commands

import (
	"context"
)

// HideMenuCommandHandler handles the business logic for hiding a menu.
type HideMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewHideMenuCommandHandler creates a handler for menu hide operations.
func NewHideMenuCommandHandler(uowFactory MenuUoWFactory) HideMenuCommandHandler {
	return HideMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hide command.
func (h HideMenuCommandHandler) Handle(ctx context.Context, command HideMenuCommand) error {
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

	aggregate.Hide()

	if err = menuRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
