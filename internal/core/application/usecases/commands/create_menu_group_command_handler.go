package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menugroup"
)

// CreateMenuGroupCommandHandler handles the business logic for menu group creation.
type CreateMenuGroupCommandHandler struct {
	uowFactory MenuGroupUoWFactory
}

// NewCreateMenuGroupCommandHandler creates a handler for menu group creation operations.
func NewCreateMenuGroupCommandHandler(uowFactory MenuGroupUoWFactory) CreateMenuGroupCommandHandler {
	return CreateMenuGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu group creation command.
func (h CreateMenuGroupCommandHandler) Handle(ctx context.Context, command CreateMenuGroupCommand) error {
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

	aggregate, err := menugroup.NewMenuGroup(command.MenuGroupID(), command.Name())
	if err != nil {
		return err
	}

	if err = uow.MenuGroupRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
