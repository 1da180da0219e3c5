package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"
)

// CreateMenuCommandHandler handles the business logic for menu creation.
// Resolves the menu group and every referenced product, snapshots the current
// product prices into menu lines, and enforces the price ≤ sum invariant
// regardless of whether the menu is created displayed or hidden.
type CreateMenuCommandHandler struct {
	uowFactory       MenuUoWFactory
	profanityChecker ports.ProfanityChecker
}

// NewCreateMenuCommandHandler creates a handler for menu creation operations.
// Requires a MenuUoWFactory for transactional persistence and a ProfanityChecker
// for name screening.
func NewCreateMenuCommandHandler(
	uowFactory MenuUoWFactory,
	profanityChecker ports.ProfanityChecker,
) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory:       uowFactory,
		profanityChecker: profanityChecker,
	}
}

// Handle processes the menu creation command.
// A missing menu group or product surfaces as errs.ErrObjectNotFound; a menu
// price above the line sum fails validation even when the menu is hidden.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, command CreateMenuCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	profane, err := h.profanityChecker.ContainsProfanity(ctx, command.Name())
	if err != nil {
		return err
	}
	if profane {
		return ErrNameContainsProfanity
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.MenuGroupRepository().Get(ctx, command.MenuGroupID()); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()

	items := make([]menu.MenuProduct, 0, len(command.ProductLines()))
	for _, line := range command.ProductLines() {
		product, lineErr := productRepo.Get(ctx, line.ProductID)
		if lineErr != nil {
			return lineErr
		}

		item, lineErr := menu.NewMenuProduct(product.ID(), product.Name(), product.Price(), line.Quantity)
		if lineErr != nil {
			return lineErr
		}

		items = append(items, item)
	}

	menuProducts, err := menu.NewMenuProducts(items)
	if err != nil {
		return err
	}

	aggregate, err := menu.NewMenu(
		command.MenuID(),
		command.Name(),
		command.Price(),
		command.MenuGroupID(),
		menuProducts,
		command.Displayed(),
	)
	if err != nil {
		return err
	}

	if err = uow.MenuRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
