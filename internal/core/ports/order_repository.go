package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line item snapshots.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUncompleted retrieves all orders that have not reached the
	// terminal Completed status.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)
}
