package commands

import (
	"context"

	"restaurant/internal/core/domain/model/ordertable"
)

// CreateOrderTableCommandHandler handles the business logic for order table creation.
type CreateOrderTableCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

// NewCreateOrderTableCommandHandler creates a handler for order table creation operations.
func NewCreateOrderTableCommandHandler(uowFactory OrderTableUoWFactory) CreateOrderTableCommandHandler {
	return CreateOrderTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order table creation command.
func (h CreateOrderTableCommandHandler) Handle(ctx context.Context, command CreateOrderTableCommand) error {
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

	aggregate, err := ordertable.NewOrderTable(command.OrderTableID(), command.Name())
	if err != nil {
		return err
	}

	if err = uow.OrderTableRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
