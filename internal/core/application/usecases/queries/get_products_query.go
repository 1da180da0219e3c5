package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the product catalog.
type GetProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve all products.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// GetProductsQueryResponse represents one product in the catalog listing.
type GetProductsQueryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
