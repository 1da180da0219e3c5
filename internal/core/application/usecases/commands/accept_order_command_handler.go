package commands

import (
	"context"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// AcceptOrderCommandHandler handles the business logic for accepting an order.
// For delivery orders the courier service is called before the status changes:
// a failed dispatch fails the whole command and the order stays in Waiting, so
// a courier is never owed for an order that was not accepted.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.CourierDispatcher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance operations.
// Requires an OrderUoWFactory for transactional persistence and a
// CourierDispatcher for delivery orders.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher ports.CourierDispatcher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the accept command.
// Dispatch failures surface wrapped in errs.ErrDispatchFailed.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
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

	if aggregate.Type().DispatchesOnAccept() {
		if err = h.dispatcher.Dispatch(ctx, aggregate); err != nil {
			return errs.NewDispatchFailedError(aggregate.ID().String(), err)
		}
	}

	if err = aggregate.Accept(); err != nil {
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
