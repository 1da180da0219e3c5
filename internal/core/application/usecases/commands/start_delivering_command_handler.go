package commands

import (
	"context"
)

// StartDeliveringCommandHandler handles the business logic for starting delivery.
// The aggregate rejects the operation with a capability error on non-delivery
// orders before any status check.
type StartDeliveringCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartDeliveringCommandHandler creates a handler for delivery start operations.
func NewStartDeliveringCommandHandler(uowFactory OrderUoWFactory) StartDeliveringCommandHandler {
	return StartDeliveringCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start delivering command.
func (h StartDeliveringCommandHandler) Handle(ctx context.Context, command StartDeliveringCommand) error {
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

	if err = aggregate.StartDelivering(); err != nil {
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
