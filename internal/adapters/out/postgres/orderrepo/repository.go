package orderrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line item snapshots to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database. Line items are immutable
// snapshots, so only the order row itself is rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"order_type":       dto.OrderType,
			"status":           dto.Status,
			"table_id":         dto.TableID,
			"delivery_address": dto.DeliveryAddress,
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

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("LineItems", orderedByPosition).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUncompleted retrieves all orders that have not reached the terminal
// Completed status.
func (r *GormOrderRepository) GetAllUncompleted(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("LineItems", orderedByPosition).
		Find(&dtos, "status != ?", int(order.Completed)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func orderedByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("order_line_items.position")
}
