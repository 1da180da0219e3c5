package commands

import (
	"context"
)

// MarkDeliveredCommandHandler handles the business logic for recording a
// completed delivery leg.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion operations.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark delivered command.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, command MarkDeliveredCommand) error {
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

	if err = aggregate.MarkDelivered(); err != nil {
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
