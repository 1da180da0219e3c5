package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// Order creation rejections belong to the validation family: each sentinel
// wraps errs.ErrValueIsInvalid so callers can classify without enumerating.
var (
	ErrMenuIsNotDisplayed      = fmt.Errorf("%w: menu is not displayed", errs.ErrValueIsInvalid)
	ErrMenuPriceMismatch       = fmt.Errorf("%w: submitted price does not match the current menu price", errs.ErrValueIsInvalid)
	ErrOrderTableIsNotOccupied = fmt.Errorf("%w: order table is not occupied", errs.ErrValueIsInvalid)
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves every ordered menu, requires each to be displayed, verifies that
// the submitted prices still match the menus' current prices, and snapshots
// name and price into immutable order line items.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// A hidden menu fails with ErrMenuIsNotDisplayed, a stale submitted price with
// ErrMenuPriceMismatch; dine-in orders additionally require the referenced
// table to exist and be occupied. The created order starts in Waiting status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
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

	lineItems, err := h.buildLineItems(ctx, uow, command.OrderLines())
	if err != nil {
		return err
	}

	var aggregate *order.Order
	switch command.OrderType() {
	case order.DineIn:
		table, tableErr := uow.OrderTableRepository().Get(ctx, *command.TableID())
		if tableErr != nil {
			return tableErr
		}
		if !table.IsOccupied() {
			return ErrOrderTableIsNotOccupied
		}

		aggregate, err = order.NewDineInOrder(command.OrderID(), lineItems, table.ID())
	case order.Takeout:
		aggregate, err = order.NewTakeoutOrder(command.OrderID(), lineItems)
	case order.Delivery:
		aggregate, err = order.NewDeliveryOrder(command.OrderID(), lineItems, command.DeliveryAddress())
	default:
		err = errs.NewValueIsInvalidError("order type")
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h CreateOrderCommandHandler) buildLineItems(
	ctx context.Context,
	uow OrderUoW,
	orderLines []OrderLine,
) (order.LineItems, error) {
	ids := make([]kernel.UUID, 0, len(orderLines))
	for _, line := range orderLines {
		ids = append(ids, line.MenuID)
	}

	menus, err := uow.MenuRepository().GetAllByIDs(ctx, ids)
	if err != nil {
		return order.LineItems{}, err
	}

	menusByID := make(map[kernel.UUID]*menu.Menu, len(menus))
	for _, m := range menus {
		menusByID[m.ID()] = m
	}

	items := make([]order.LineItem, 0, len(orderLines))
	for _, line := range orderLines {
		m, ok := menusByID[line.MenuID]
		if !ok {
			return order.LineItems{}, errs.NewObjectNotFoundError("menuId", line.MenuID)
		}
		if !m.IsDisplayed() {
			return order.LineItems{}, ErrMenuIsNotDisplayed
		}
		if !m.Price().IsEqual(line.Price) {
			return order.LineItems{}, ErrMenuPriceMismatch
		}

		item, itemErr := order.NewLineItem(m.ID(), m.Name(), m.Price(), line.Quantity)
		if itemErr != nil {
			return order.LineItems{}, itemErr
		}

		items = append(items, item)
	}

	return order.NewLineItems(items)
}
