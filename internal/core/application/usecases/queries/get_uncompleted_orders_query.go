// Package queries contains read-side operations of the application layer.
// Queries bypass the domain model and read directly from the database,
// returning flat response structures shaped for the callers.
package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves all orders still in progress.
// Returns every order that has not reached the terminal Completed status,
// for kitchen and floor monitoring.
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to retrieve in-progress orders.
// This is a parameterless query that fetches all non-completed orders.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedOrdersQueryIsNotConstructed if validation fails.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse represents one in-progress order.
// TableID is set for dine-in orders, DeliveryAddress for delivery orders.
type GetUncompletedOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderType       order.Type
	Status          order.Status
	TableID         *kernel.UUID
	DeliveryAddress string
}
