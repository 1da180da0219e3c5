// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and clients for external
// services. These interfaces establish dependency inversion boundaries,
// enabling testability and adapter substitution.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
