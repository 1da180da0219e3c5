// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status.
type OrderDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderType       int           `gorm:"not null"`
	Status          int           `gorm:"not null;index"`
	TableID         *uuid.UUID    `gorm:"type:uuid;index"`
	DeliveryAddress string        `gorm:"type:varchar(512)"`
	LineItems       []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one immutable order line snapshot. Lines have no
// identity of their own: the composite key (order, position) keeps them
// unique and preserves insertion order.
type LineItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	MenuID   uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuName string    `gorm:"type:varchar(255);not null"`
	Price    int64     `gorm:"type:bigint;not null"`
	Quantity int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional dine-in table reference.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var tableID *uuid.UUID
	if id := aggregate.TableID(); id != nil {
		raw := id.Bytes()
		tableID = &raw
	}

	items := aggregate.LineItems().Items()
	lineItems := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		lineItems = append(lineItems, LineItemDTO{
			OrderID:  orderID,
			Position: i,
			MenuID:   item.MenuID().Bytes(),
			MenuName: item.MenuName(),
			Price:    item.Price().Amount(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		OrderType:       int(aggregate.Type()),
		Status:          int(aggregate.Status()),
		TableID:         tableID,
		DeliveryAddress: aggregate.DeliveryAddress(),
		LineItems:       lineItems,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and line item snapshots
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableID *kernel.UUID
	if dto.TableID != nil {
		tID, tableErr := kernel.UUIDFromBytes((*dto.TableID)[:])
		if tableErr != nil {
			return nil, tableErr
		}

		tableID = &tID
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		menuID, itemErr := kernel.UUIDFromBytes(li.MenuID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, itemErr := kernel.NewPrice(li.Price)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(menuID, li.MenuName, price, li.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	lineItems, err := order.NewLineItems(items)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Type(dto.OrderType), order.Status(dto.Status),
		lineItems, tableID, dto.DeliveryAddress)
}
