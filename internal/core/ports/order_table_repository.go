package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/ordertable"
)

// OrderTableRepository defines the persistence contract for order tables.
type OrderTableRepository interface {
	// Add persists a new order table to storage.
	Add(ctx context.Context, aggregate *ordertable.OrderTable) error

	// Update persists changes to an existing order table.
	Update(ctx context.Context, aggregate *ordertable.OrderTable) error

	// Get retrieves an order table by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error)
}
