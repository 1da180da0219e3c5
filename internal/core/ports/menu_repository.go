package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/menugroup"
)

// MenuGroupRepository defines the persistence contract for menu groups.
type MenuGroupRepository interface {
	// Add persists a new menu group to storage.
	Add(ctx context.Context, aggregate *menugroup.MenuGroup) error

	// Get retrieves a menu group by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error)
}

// MenuRepository defines the persistence contract for menu aggregates.
type MenuRepository interface {
	// Add persists a new menu aggregate to storage.
	// The menu must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Update persists changes to an existing menu aggregate.
	// The menu must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a menu aggregate by its unique identifier.
	// Returns the complete menu with all its menu products.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetAllByIDs retrieves the menus with the given identifiers.
	// Used when building an order to resolve and validate every ordered menu
	// in one round trip.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)

	// GetAllByProductID retrieves every menu containing a line for the given
	// product. Used by the price change cascade to find affected menus.
	GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error)

	// GetAll retrieves every menu. Used by the periodic revalidation sweep.
	GetAll(ctx context.Context) ([]*menu.Menu, error)
}
