// Package menugrouprepo provides data transfer objects and mapping functions for menu group persistence.
package menugrouprepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menugroup"

	"github.com/google/uuid"
)

// MenuGroupDTO represents the database structure for persisting menu groups.
type MenuGroupDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for menu group entities.
func (MenuGroupDTO) TableName() string {
	return "menu_groups"
}

func fromDomain(aggregate *menugroup.MenuGroup) MenuGroupDTO {
	return MenuGroupDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

func toDomain(dto MenuGroupDTO) (*menugroup.MenuGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menugroup.NewMenuGroup(id, dto.Name)
}
