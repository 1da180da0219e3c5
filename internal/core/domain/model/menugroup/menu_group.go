// Package menugroup contains the menu group entity. Menu groups categorize
// menus; every menu must reference an existing group.
package menugroup

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrMenuGroupIsNotConstructed is returned when a MenuGroup was not created
// through the NewMenuGroup factory method.
var ErrMenuGroupIsNotConstructed = errors.New("MenuGroup must be created via NewMenuGroup constructor")

// MenuGroup is a named category of menus.
type MenuGroup struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewMenuGroup creates a new MenuGroup with a valid identifier and non-blank name.
func NewMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("menu group name")
	}

	return &MenuGroup{
		id:            id,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the MenuGroup was constructed via NewMenuGroup.
func (g *MenuGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrMenuGroupIsNotConstructed
	}
	return nil
}

// ID returns the group's unique identifier.
func (g *MenuGroup) ID() kernel.UUID {
	return g.id
}

// Name returns the group name.
func (g *MenuGroup) Name() string {
	return g.name
}
