package commands

import (
	"context"
)

// OccupyOrderTableCommandHandler handles the business logic for seating a party.
type OccupyOrderTableCommandHandler struct {
	uowFactory OrderTableUoWFactory
}

// NewOccupyOrderTableCommandHandler creates a handler for table occupation operations.
func NewOccupyOrderTableCommandHandler(uowFactory OrderTableUoWFactory) OccupyOrderTableCommandHandler {
	return OccupyOrderTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table occupation command.
func (h OccupyOrderTableCommandHandler) Handle(ctx context.Context, command OccupyOrderTableCommand) error {
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

	aggregate, err := uow.OrderTableRepository().Get(ctx, command.OrderTableID())
	if err != nil {
		return err
	}

	if err = aggregate.Occupy(command.NumberOfGuests()); err != nil {
		return err
	}

	if err = uow.OrderTableRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
