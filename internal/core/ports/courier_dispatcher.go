package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// CourierDispatcher is the client contract for the external courier service.
// Accepting a delivery order requests a courier; the request must succeed
// before the order leaves the Waiting status.
type CourierDispatcher interface {
	// Dispatch requests a courier for the given delivery order.
	// Returns an error wrapping errs.ErrDispatchFailed when the courier
	// service rejects or fails the request.
	Dispatch(ctx context.Context, aggregate *order.Order) error
}
