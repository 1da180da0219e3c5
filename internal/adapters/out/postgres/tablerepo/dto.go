// Package tablerepo provides data transfer objects and mapping functions for order table persistence.
package tablerepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/ordertable"

	"github.com/google/uuid"
)

// OrderTableDTO represents the database structure for persisting order tables.
type OrderTableDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	NumberOfGuests int       `gorm:"not null"`
	Occupied       bool      `gorm:"not null"`
}

// TableName specifies the database table name for order table entities.
func (OrderTableDTO) TableName() string {
	return "order_tables"
}

func fromDomain(aggregate *ordertable.OrderTable) OrderTableDTO {
	return OrderTableDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		NumberOfGuests: aggregate.NumberOfGuests(),
		Occupied:       aggregate.IsOccupied(),
	}
}

func toDomain(dto OrderTableDTO) (*ordertable.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return ordertable.RestoreOrderTable(id, dto.Name, dto.NumberOfGuests, dto.Occupied)
}
