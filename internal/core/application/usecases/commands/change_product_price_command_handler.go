package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// ChangeProductPriceCommandHandler handles the business logic for product
// price changes. The price change commits first; the PriceChanged event is
// published afterwards so consumers never observe an uncommitted price.
type ChangeProductPriceCommandHandler struct {
	uowFactory ProductUoWFactory
	publisher  ports.PriceChangePublisher
}

// NewChangeProductPriceCommandHandler creates a handler for product price
// change operations. Requires a ProductUoWFactory for transactional
// persistence and a PriceChangePublisher for the cascade event.
func NewChangeProductPriceCommandHandler(
	uowFactory ProductUoWFactory,
	publisher ports.PriceChangePublisher,
) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the price change command.
// If publishing fails after commit the price change is already durable; the
// returned error signals degraded propagation, which the periodic menu
// revalidation sweep reconciles. Retrying the command is safe.
func (h ChangeProductPriceCommandHandler) Handle(ctx context.Context, command ChangeProductPriceCommand) error {
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

	productRepo := uow.ProductRepository()

	aggregate, err := productRepo.Get(ctx, command.ProductID())
	if err != nil {
		return err
	}

	event, err := aggregate.ChangePrice(command.NewPrice())
	if err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, event)
}
