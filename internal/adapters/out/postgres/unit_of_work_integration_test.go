package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/menugrouprepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/productrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/menugroup"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/ordertable"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&menugrouprepo.MenuGroupDTO{},
		&menurepo.MenuDTO{},
		&menurepo.MenuProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&tablerepo.OrderTableDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE products, menu_groups, menus, menu_products, orders, order_line_items, order_tables").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ProductRepository(), "First instance should provide product repository")
	suite.NotNil(uow1.MenuRepository(), "First instance should provide menu repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.OrderTableRepository(), "Second instance should provide order table repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_MenuRoundTrip verifies a menu with product lines survives
// persistence with line order, snapshots, and the display flag intact.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MenuRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	group := suite.createTestMenuGroup()
	testProduct := suite.createTestProduct("Fried Chicken", 16000)
	testMenu := suite.createTestMenu(group.ID(), testProduct, 2, 19000, true)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.MenuGroupRepository().Add(ctx, group)
	suite.Require().NoError(err)
	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)
	err = uow.MenuRepository().Add(ctx, testMenu)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.MenuRepository().Get(ctx, testMenu.ID())
	suite.Require().NoError(err)
	suite.Equal(testMenu.Name(), retrieved.Name())
	suite.True(retrieved.Price().IsEqual(testMenu.Price()))
	suite.True(retrieved.IsDisplayed())
	suite.True(retrieved.MenuGroupID().IsEqual(group.ID()))

	lines := retrieved.MenuProducts().Items()
	suite.Require().Len(lines, 1)
	suite.True(lines[0].ProductID().IsEqual(testProduct.ID()))
	suite.Equal("Fried Chicken", lines[0].ProductName())
	suite.EqualValues(16000, lines[0].Price().Amount())
	suite.EqualValues(2, lines[0].Quantity())
}

// TestUnitOfWork_MenuPriceRefreshPersists verifies that a product price drop
// applied through the aggregate persists both the new line price and the
// forced hide.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MenuPriceRefreshPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()

	group := suite.createTestMenuGroup()
	testProduct := suite.createTestProduct("Fried Chicken", 16000)
	testMenu := suite.createTestMenu(group.ID(), testProduct, 2, 19000, true)

	err := uow.MenuGroupRepository().Add(ctx, group)
	suite.Require().NoError(err)
	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)
	err = uow.MenuRepository().Add(ctx, testMenu)
	suite.Require().NoError(err)

	// Product price drops so the menu price exceeds the new sum
	newPrice, err := kernel.NewPrice(8000)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	loaded, err := uow.MenuRepository().Get(ctx, testMenu.ID())
	suite.Require().NoError(err)

	changed, err := loaded.RefreshProductPrice(testProduct.ID(), newPrice)
	suite.Require().NoError(err)
	suite.True(changed)
	suite.False(loaded.IsDisplayed(), "Menu priced above the new sum should be hidden")

	err = uow.MenuRepository().Update(ctx, loaded)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.MenuRepository().Get(ctx, testMenu.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsDisplayed())
	suite.EqualValues(8000, retrieved.MenuProducts().Items()[0].Price().Amount())
}

// TestUnitOfWork_GetAllByProductID verifies the cascade lookup finds exactly
// the menus referencing the product.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetAllByProductID() {
	ctx := context.Background()
	uow := suite.factory.Create()

	group := suite.createTestMenuGroup()
	chicken := suite.createTestProduct("Fried Chicken", 16000)
	noodles := suite.createTestProduct("Noodles", 5000)

	chickenMenu := suite.createTestMenu(group.ID(), chicken, 2, 19000, true)
	noodleMenu := suite.createTestMenu(group.ID(), noodles, 1, 4000, true)

	err := uow.MenuGroupRepository().Add(ctx, group)
	suite.Require().NoError(err)
	err = uow.ProductRepository().Add(ctx, chicken)
	suite.Require().NoError(err)
	err = uow.ProductRepository().Add(ctx, noodles)
	suite.Require().NoError(err)
	err = uow.MenuRepository().Add(ctx, chickenMenu)
	suite.Require().NoError(err)
	err = uow.MenuRepository().Add(ctx, noodleMenu)
	suite.Require().NoError(err)

	found, err := uow.MenuRepository().GetAllByProductID(ctx, chicken.ID())
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(found[0].ID().IsEqual(chickenMenu.ID()))
}

// TestUnitOfWork_DineInOrderWorkflow walks a dine-in order through its full
// lifecycle with the table release inside the completing transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DineInOrderWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	table, err := ordertable.NewOrderTable(kernel.NewUUID(), "Table 1")
	suite.Require().NoError(err)
	err = table.Occupy(4)
	suite.Require().NoError(err)

	err = uow.OrderTableRepository().Add(ctx, table)
	suite.Require().NoError(err)

	testOrder := suite.createTestDineInOrder(table.ID())
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Accept and serve
	err = testOrder.Accept()
	suite.Require().NoError(err)
	err = testOrder.Serve()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Complete the order and release the table atomically
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = testOrder.Complete()
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	loadedTable, err := uow.OrderTableRepository().Get(ctx, table.ID())
	suite.Require().NoError(err)
	loadedTable.Release()
	err = uow.OrderTableRepository().Update(ctx, loadedTable)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.TableID())
	suite.True(retrievedOrder.TableID().IsEqual(table.ID()))

	retrievedTable, err := newUow.OrderTableRepository().Get(ctx, table.ID())
	suite.Require().NoError(err)
	suite.False(retrievedTable.IsOccupied())
	suite.Zero(retrievedTable.NumberOfGuests())
}

// TestUnitOfWork_GetAllUncompleted verifies the uncompleted-order listing
// excludes completed orders.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetAllUncompleted() {
	ctx := context.Background()
	uow := suite.factory.Create()

	waiting := suite.createTestTakeoutOrder()
	completed := suite.createTestTakeoutOrder()
	suite.Require().NoError(completed.Accept())
	suite.Require().NoError(completed.Serve())
	suite.Require().NoError(completed.Complete())

	err := uow.OrderRepository().Add(ctx, waiting)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, completed)
	suite.Require().NoError(err)

	uncompleted, err := uow.OrderRepository().GetAllUncompleted(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(uncompleted, 1)
	suite.True(uncompleted[0].ID().IsEqual(waiting.ID()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := suite.createTestProduct("Fried Chicken", 16000)
	testOrder := suite.createTestTakeoutOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Entities are visible within the transaction
	_, err = uow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().Error(err, "Product should not exist after rollback")
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.createTestTakeoutOrder()
	order2 := suite.createTestTakeoutOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestDeliveryOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.Equal(order.Delivery, retrieved.Type())
	suite.Equal("221B Baker Street", retrieved.DeliveryAddress())

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestMenuGroup() *menugroup.MenuGroup {
	group, err := menugroup.NewMenuGroup(kernel.NewUUID(), "Lunch Specials")
	suite.Require().NoError(err)
	return group
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestProduct(name string, amount int64) *product.Product {
	price, err := kernel.NewPrice(amount)
	suite.Require().NoError(err)
	testProduct, err := product.NewProduct(kernel.NewUUID(), name, price)
	suite.Require().NoError(err)
	return testProduct
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestMenu(
	menuGroupID kernel.UUID,
	testProduct *product.Product,
	quantity int64,
	amount int64,
	displayed bool,
) *menu.Menu {
	line, err := menu.NewMenuProduct(testProduct.ID(), testProduct.Name(), testProduct.Price(), quantity)
	suite.Require().NoError(err)
	lines, err := menu.NewMenuProducts([]menu.MenuProduct{line})
	suite.Require().NoError(err)

	price, err := kernel.NewPrice(amount)
	suite.Require().NoError(err)
	testMenu, err := menu.NewMenu(kernel.NewUUID(), testProduct.Name()+" Set", price, menuGroupID, lines, displayed)
	suite.Require().NoError(err)
	return testMenu
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestLineItems() order.LineItems {
	price, err := kernel.NewPrice(19000)
	suite.Require().NoError(err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Fried Chicken Set", price, 2)
	suite.Require().NoError(err)
	items, err := order.NewLineItems([]order.LineItem{item})
	suite.Require().NoError(err)
	return items
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDineInOrder(tableID kernel.UUID) *order.Order {
	testOrder, err := order.NewDineInOrder(kernel.NewUUID(), suite.createTestLineItems(), tableID)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestTakeoutOrder() *order.Order {
	testOrder, err := order.NewTakeoutOrder(kernel.NewUUID(), suite.createTestLineItems())
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestDeliveryOrder() *order.Order {
	testOrder, err := order.NewDeliveryOrder(kernel.NewUUID(), suite.createTestLineItems(), "221B Baker Street")
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
