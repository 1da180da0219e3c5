package ports

import (
	"context"

	"restaurant/internal/core/domain/model/product"
)

// PriceChangePublisher publishes product price change events to the message
// broker after the owning transaction commits. Consumers drive the menu price
// propagation cascade from these events.
type PriceChangePublisher interface {
	// Publish emits a price change event. Publishing happens outside the
	// transaction that changed the price; a lost event is recovered by the
	// periodic menu revalidation sweep.
	Publish(ctx context.Context, event product.PriceChanged) error
}
