package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/menugroup"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}
func (m *MockMenuRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}
func (m *MockMenuRepository) GetAllByProductID(ctx context.Context, productID kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}
func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

type MockMenuGroupRepository struct{ mock.Mock }

func (m *MockMenuGroupRepository) Add(ctx context.Context, aggregate *menugroup.MenuGroup) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menugroup.MenuGroup), args.Error(1)
}

type MockMenuUoW struct{ mock.Mock }

func (m *MockMenuUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMenuUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMenuUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockMenuUoW) MenuGroupRepository() ports.MenuGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuGroupRepository)
}

func (m *MockMenuUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

func newMenuUoW(t *testing.T, ctx context.Context) (*MockMenuUoW, *MockMenuRepository, *MockMenuGroupRepository, *MockProductRepository, *MockMenuUoWFactory) {
	t.Helper()

	menuRepo := new(MockMenuRepository)
	groupRepo := new(MockMenuGroupRepository)
	productRepo := new(MockProductRepository)

	uow := new(MockMenuUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("MenuRepository").Return(menuRepo).Maybe()
	uow.On("MenuGroupRepository").Return(groupRepo).Maybe()
	uow.On("ProductRepository").Return(productRepo).Maybe()

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	return uow, menuRepo, groupRepo, productRepo, factory
}

func TestCreateMenuCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	groupID := kernel.NewUUID()
	productID := kernel.NewUUID()

	group, err := menugroup.NewMenuGroup(groupID, "Chicken")
	require.NoError(t, err)
	chicken, err := product.NewProduct(productID, "Fried chicken", mustNewPrice(t, 16000))
	require.NoError(t, err)

	// 19,000 menu over 2 x 16,000 lines satisfies price <= sum
	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "Fried chicken set", mustNewPrice(t, 19000),
		groupID, true, []commands.ProductLine{{ProductID: productID, Quantity: 2}})
	require.NoError(t, err)

	checker := new(MockProfanityChecker)
	checker.On("ContainsProfanity", ctx, "Fried chicken set").Return(false, nil).Once()

	uow, menuRepo, groupRepo, productRepo, factory := newMenuUoW(t, ctx)
	groupRepo.On("Get", mock.Anything, groupID).Return(group, nil).Once()
	productRepo.On("Get", mock.Anything, productID).Return(chicken, nil).Once()
	menuRepo.On("Add", mock.Anything, mock.AnythingOfType("*menu.Menu")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCreateMenuCommandHandler(factory, checker)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	menuRepo.AssertExpectations(t)
	groupRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_MenuGroupNotFound(t *testing.T) {
	ctx := t.Context()
	groupID := kernel.NewUUID()

	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "Fried chicken set", mustNewPrice(t, 19000),
		groupID, false, []commands.ProductLine{{ProductID: kernel.NewUUID(), Quantity: 1}})
	require.NoError(t, err)

	checker := new(MockProfanityChecker)
	checker.On("ContainsProfanity", ctx, "Fried chicken set").Return(false, nil).Once()

	uow, _, groupRepo, _, factory := newMenuUoW(t, ctx)
	groupRepo.On("Get", mock.Anything, groupID).
		Return(nil, errs.NewObjectNotFoundError("menuGroupId", groupID)).Once()

	h := commands.NewCreateMenuCommandHandler(factory, checker)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	groupRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_PriceAboveSum(t *testing.T) {
	ctx := t.Context()
	groupID := kernel.NewUUID()
	productID := kernel.NewUUID()

	group, err := menugroup.NewMenuGroup(groupID, "Chicken")
	require.NoError(t, err)
	chicken, err := product.NewProduct(productID, "Fried chicken", mustNewPrice(t, 16000))
	require.NoError(t, err)

	// 33,000 over a 2 x 16,000 = 32,000 sum violates the invariant, even hidden
	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "Fried chicken set", mustNewPrice(t, 33000),
		groupID, false, []commands.ProductLine{{ProductID: productID, Quantity: 2}})
	require.NoError(t, err)

	checker := new(MockProfanityChecker)
	checker.On("ContainsProfanity", ctx, "Fried chicken set").Return(false, nil).Once()

	uow, menuRepo, groupRepo, productRepo, factory := newMenuUoW(t, ctx)
	groupRepo.On("Get", mock.Anything, groupID).Return(group, nil).Once()
	productRepo.On("Get", mock.Anything, productID).Return(chicken, nil).Once()

	h := commands.NewCreateMenuCommandHandler(factory, checker)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	menuRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateMenuCommandHandler_Handle_ProfaneName(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "Cursed set", mustNewPrice(t, 19000),
		kernel.NewUUID(), false, []commands.ProductLine{{ProductID: kernel.NewUUID(), Quantity: 1}})
	require.NoError(t, err)

	checker := new(MockProfanityChecker)
	checker.On("ContainsProfanity", ctx, "Cursed set").Return(true, nil).Once()

	factory := new(MockMenuUoWFactory)

	h := commands.NewCreateMenuCommandHandler(factory, checker)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNameContainsProfanity)
	factory.AssertExpectations(t)
}
