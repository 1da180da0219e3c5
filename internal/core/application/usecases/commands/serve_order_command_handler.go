package commands

import (
	"context"
)

// ServeOrderCommandHandler handles the business logic for serving an order.
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewServeOrderCommandHandler creates a handler for order serving operations.
func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the serve command.
func (h ServeOrderCommandHandler) Handle(ctx context.Context, command ServeOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Serve(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
