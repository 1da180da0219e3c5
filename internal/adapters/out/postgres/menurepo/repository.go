package menurepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu with its product lines to the database.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing menu to the database.
func (r *GormMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested product lines
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a menu with its product lines by ID.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuDTO
	if err := r.db.WithContext(ctx).
		Preload("Products", orderedByPosition).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByIDs retrieves the menus with the given identifiers.
// Missing identifiers are simply absent from the result; callers decide
// whether that is an error.
func (r *GormMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).
		Preload("Products", orderedByPosition).
		Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllByProductID retrieves every menu containing a line for the given product.
func (r *GormMenuRepository) GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).
		Preload("Products", orderedByPosition).
		Joins("JOIN menu_products ON menu_products.menu_id = menus.id AND menu_products.product_id = ?",
			productID.Bytes()).
		Distinct("menus.*").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAll retrieves every menu with its product lines.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*menu.Menu, error) {
	var dtos []MenuDTO
	if err := r.db.WithContext(ctx).
		Preload("Products", orderedByPosition).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormMenuRepository) toDomainAll(dtos []MenuDTO) ([]*menu.Menu, error) {
	menus := make([]*menu.Menu, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}

	return menus, nil
}

func orderedByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("menu_products.position")
}
