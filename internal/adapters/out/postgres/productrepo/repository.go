package productrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
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

// Update saves an existing product to the database.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
