// Package menurepo provides data transfer objects and mapping functions for menu persistence.
// This package implements the repository pattern for the menu aggregate, handling
// the conversion between domain entities and database representations.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuDTO represents the database structure for persisting menu aggregates.
// Maps menu domain entities to relational database tables with proper indexing
// for efficient querying by display state and menu group.
type MenuDTO struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name        string           `gorm:"type:varchar(255);not null"`
	Price       int64            `gorm:"type:bigint;not null"`
	Displayed   bool             `gorm:"index;not null"`
	MenuGroupID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Products    []MenuProductDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for menu entities.
// Overrides GORM's default naming convention to use "menus".
func (MenuDTO) TableName() string {
	return "menus"
}

// MenuProductDTO represents one product line within a menu. Lines have no
// identity of their own: the composite key (menu, position) keeps them unique
// and preserves insertion order.
type MenuProductDTO struct {
	MenuID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Price       int64     `gorm:"type:bigint;not null"`
	Quantity    int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for menu product lines.
func (MenuProductDTO) TableName() string {
	return "menu_products"
}

// fromDomain converts a menu domain aggregate to its database representation.
func fromDomain(aggregate *menu.Menu) MenuDTO {
	menuID := aggregate.ID().Bytes()
	items := aggregate.MenuProducts().Items()

	products := make([]MenuProductDTO, 0, len(items))
	for i, item := range items {
		products = append(products, MenuProductDTO{
			MenuID:      menuID,
			Position:    i,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Price:       item.Price().Amount(),
			Quantity:    item.Quantity(),
		})
	}

	return MenuDTO{
		ID:          menuID,
		Name:        aggregate.Name(),
		Price:       aggregate.Price().Amount(),
		Displayed:   aggregate.IsDisplayed(),
		MenuGroupID: aggregate.MenuGroupID().Bytes(),
		Products:    products,
	}
}

// toDomain converts a database DTO to a menu domain aggregate.
// Uses RestoreMenu so that a persisted hidden menu whose price exceeds its
// line sum can still be loaded.
func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	menuGroupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	items := make([]menu.MenuProduct, 0, len(dto.Products))
	for _, p := range dto.Products {
		productID, itemErr := kernel.UUIDFromBytes(p.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		itemPrice, itemErr := kernel.NewPrice(p.Price)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := menu.NewMenuProduct(productID, p.ProductName, itemPrice, p.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	menuProducts, err := menu.NewMenuProducts(items)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenu(id, dto.Name, price, menuGroupID, menuProducts, dto.Displayed)
}
