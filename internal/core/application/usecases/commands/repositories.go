// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MenuGroupRepoFactory provides access to the menu group repository within a transaction.
	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderTableRepoFactory provides access to the order table repository within a transaction.
	OrderTableRepoFactory interface {
		OrderTableRepository() ports.OrderTableRepository
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// MenuGroupUoW manages transactions for menu-group-only operations.
	MenuGroupUoW interface {
		TxManager
		MenuGroupRepoFactory
	}

	// MenuGroupUoWFactory creates new menu group unit of work instances.
	MenuGroupUoWFactory interface {
		Create() MenuGroupUoW
	}

	// MenuUoW manages transactions for menu operations. Menu creation resolves
	// the menu group and the referenced products, and the price propagation
	// cascade re-reads the product, so the menu unit of work spans all three
	// repositories.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
		MenuGroupRepoFactory
		ProductRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OrderUoW manages transactions for order operations. Order creation
	// resolves the ordered menus and the dine-in table, and dine-in completion
	// releases the table in the same transaction, so the order unit of work
	// spans those repositories.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		OrderTableRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderTableUoW manages transactions for table-only operations.
	OrderTableUoW interface {
		TxManager
		OrderTableRepoFactory
	}

	// OrderTableUoWFactory creates new order table unit of work instances.
	OrderTableUoWFactory interface {
		Create() OrderTableUoW
	}
)
