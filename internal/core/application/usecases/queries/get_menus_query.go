package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetMenusQueryIsNotConstructed = errors.New(
	"GetMenusQuery must be created via NewGetMenusQuery constructor",
)

// GetMenusQuery retrieves the menu catalog. With OnlyDisplayed set the
// result is restricted to menus currently visible to customers.
type GetMenusQuery struct {
	guard guard.ConstructorGuard

	onlyDisplayed bool
}

// NewGetMenusQuery creates a query to retrieve the menu catalog.
func NewGetMenusQuery(onlyDisplayed bool) GetMenusQuery {
	return GetMenusQuery{
		guard:         guard.NewConstructorGuard(),
		onlyDisplayed: onlyDisplayed,
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenusQueryIsNotConstructed if validation fails.
func (q GetMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetMenusQueryIsNotConstructed)
}

// OnlyDisplayed reports whether hidden menus are excluded from the result.
func (q GetMenusQuery) OnlyDisplayed() bool {
	return q.onlyDisplayed
}

// GetMenusQueryResponse represents one menu in the catalog listing.
// The struct is JSON-tagged because listings are cached in Redis as JSON.
type GetMenusQueryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Displayed   bool   `json:"displayed"`
	MenuGroupID string `json:"menu_group_id"`
}
