// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Basic transaction management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; multiple
// goroutines should use separate instances. Keep transactions short to
// reduce lock contention.
package postgres

import (
	"context"

	"restaurant/internal/adapters/out/postgres/menugrouprepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/productrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state and aggregate tracking,
// ensuring proper isolation between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities to ensure data consistency and proper rollback handling.
//
// The unit of work tracks all aggregates modified during the transaction,
// enabling patterns like domain event publishing after successful commits
// or implementing the outbox pattern for reliable event processing.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ProductRepository provides access to product persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.session(), uow)
}

// MenuGroupRepository provides access to menu group persistence operations within the unit of work.
func (uow *GormUnitOfWork) MenuGroupRepository() ports.MenuGroupRepository {
	return menugrouprepo.NewGormMenuGroupRepository(uow.session(), uow)
}

// MenuRepository provides access to menu persistence operations within the unit of work.
// The returned repository automatically tracks all menu aggregates that are
// added or updated.
func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.session(), uow)
}

// OrderRepository provides access to order persistence operations within the unit of work.
// The returned repository automatically tracks all order aggregates that are
// added or updated.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.session(), uow)
}

// OrderTableRepository provides access to order table persistence operations within the unit of work.
func (uow *GormUnitOfWork) OrderTableRepository() ports.OrderTableRepository {
	return tablerepo.NewGormOrderTableRepository(uow.session(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// This method is typically called by repository implementations when aggregates
// are added, updated, or otherwise modified.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) session() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
