package menugrouprepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menugroup"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuGroupRepository implements MenuGroupRepository using GORM.
type GormMenuGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuGroupRepository creates a new GORM menu group repository.
func NewGormMenuGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuGroupRepository {
	return &GormMenuGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu group to the database.
func (r *GormMenuGroupRepository) Add(ctx context.Context, aggregate *menugroup.MenuGroup) error {
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

// Get retrieves a menu group by ID.
func (r *GormMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu group", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
