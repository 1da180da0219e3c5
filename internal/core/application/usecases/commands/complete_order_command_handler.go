package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler handles the business logic for order completion.
// Delivery orders complete from Delivered, dine-in and takeout from Served.
// Completing a dine-in order releases the referenced order table in the same
// transaction, so the table is freed exactly when the order reaches its
// terminal status.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion operations.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete command.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) error {
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

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if aggregate.Type() == order.DineIn && aggregate.TableID() != nil {
		tableRepo := uow.OrderTableRepository()

		table, tableErr := tableRepo.Get(ctx, *aggregate.TableID())
		if tableErr != nil {
			return tableErr
		}

		table.Release()

		if tableErr = tableRepo.Update(ctx, table); tableErr != nil {
			return tableErr
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
