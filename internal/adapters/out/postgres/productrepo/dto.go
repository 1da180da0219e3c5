// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Prices are stored as bigint amounts in minor currency units.
type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Price int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Price: aggregate.Price().Amount(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price)
}
