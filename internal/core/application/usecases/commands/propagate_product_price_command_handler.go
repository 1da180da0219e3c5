package commands

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/product"
)

// PropagateProductPriceCommandHandler runs the menu price propagation cascade
// for one product. It re-reads the product's current stored price instead of
// trusting an event payload, so duplicated and reordered deliveries converge
// on the same result, and it refreshes each affected menu in its own
// transaction so that one menu's failure cannot roll back the rest.
type PropagateProductPriceCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewPropagateProductPriceCommandHandler creates a handler for the price
// propagation cascade.
func NewPropagateProductPriceCommandHandler(uowFactory MenuUoWFactory) PropagateProductPriceCommandHandler {
	return PropagateProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the propagation command.
// Menus the refresh leaves unchanged are not rewritten, which makes the
// handler idempotent under redelivery. Per-menu failures are collected and
// returned joined after the remaining menus have been processed.
func (h PropagateProductPriceCommandHandler) Handle(ctx context.Context, command PropagateProductPriceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, menus, err := h.loadProductAndMenus(ctx, command)
	if err != nil {
		return err
	}

	var menuErrs []error
	for _, m := range menus {
		if refreshErr := h.refreshMenu(ctx, m, aggregate); refreshErr != nil {
			menuErrs = append(menuErrs, fmt.Errorf("menu %s: %w", m.ID(), refreshErr))
		}
	}

	return errors.Join(menuErrs...)
}

func (h PropagateProductPriceCommandHandler) loadProductAndMenus(
	ctx context.Context,
	command PropagateProductPriceCommand,
) (*product.Product, []*menu.Menu, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ProductRepository().Get(ctx, command.ProductID())
	if err != nil {
		return nil, nil, err
	}

	menus, err := uow.MenuRepository().GetAllByProductID(ctx, aggregate.ID())
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return aggregate, menus, nil
}

// refreshMenu re-snapshots the product price into one menu. The write runs in
// its own transaction: a failed update aborts only that transaction, never a
// sibling menu's.
func (h PropagateProductPriceCommandHandler) refreshMenu(
	ctx context.Context,
	m *menu.Menu,
	aggregate *product.Product,
) error {
	changed, err := m.RefreshProductPrice(aggregate.ID(), aggregate.Price())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
