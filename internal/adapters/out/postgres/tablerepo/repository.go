package tablerepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/ordertable"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderTableRepository implements OrderTableRepository using GORM.
type GormOrderTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderTableRepository creates a new GORM order table repository.
func NewGormOrderTableRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderTableRepository {
	return &GormOrderTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order table to the database.
func (r *GormOrderTableRepository) Add(ctx context.Context, aggregate *ordertable.OrderTable) error {
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

// Update saves an existing order table to the database.
func (r *GormOrderTableRepository) Update(ctx context.Context, aggregate *ordertable.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderTableDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":             dto.Name,
			"number_of_guests": dto.NumberOfGuests,
			"occupied":         dto.Occupied,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order table by ID.
func (r *GormOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order table", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
