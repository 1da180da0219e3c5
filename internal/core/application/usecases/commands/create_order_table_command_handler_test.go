package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/ordertable"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderTableUoW struct{ mock.Mock }

func (m *MockOrderTableUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderTableUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderTableUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderTableUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}

type MockOrderTableUoWFactory struct{ mock.Mock }

func (m *MockOrderTableUoWFactory) Create() commands.OrderTableUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderTableUoW)
}

func newOrderTableUoW(t *testing.T, ctx context.Context) (*MockOrderTableUoW, *MockOrderTableRepository, *MockOrderTableUoWFactory) {
	t.Helper()

	tableRepo := new(MockOrderTableRepository)

	uow := new(MockOrderTableUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderTableRepository").Return(tableRepo).Maybe()

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	return uow, tableRepo, factory
}

func TestCreateOrderTableCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	tableRepo := new(MockOrderTableRepository)
	uow := new(MockOrderTableUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		tableRepo.On("Add", ctx, mock.AnythingOfType("*ordertable.OrderTable")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderTableRepository").Return(tableRepo).Once()

	factory := new(MockOrderTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCreateOrderTableCommand(kernel.NewUUID(), "Table 1")
	require.NoError(t, err)

	h := commands.NewCreateOrderTableCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	added := tableRepo.Calls[0].Arguments.Get(1).(*ordertable.OrderTable)
	assert.Equal(t, "Table 1", added.Name())
	assert.False(t, added.IsOccupied())

	uow.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderTableCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderTableUoWFactory)

	h := commands.NewCreateOrderTableCommandHandler(factory)
	err := h.Handle(ctx, commands.CreateOrderTableCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderTableCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestOccupyOrderTableCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	uow, tableRepo, factory := newOrderTableUoW(t, ctx)

	table, err := ordertable.NewOrderTable(kernel.NewUUID(), "Table 1")
	require.NoError(t, err)

	tableRepo.On("Get", ctx, table.ID()).Return(table, nil).Once()
	tableRepo.On("Update", ctx, table).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewOccupyOrderTableCommand(table.ID(), 4)
	require.NoError(t, err)

	h := commands.NewOccupyOrderTableCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, table.IsOccupied())
	assert.Equal(t, 4, table.NumberOfGuests())

	uow.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
}

func TestOccupyOrderTableCommandHandler_Handle_TableNotFound(t *testing.T) {
	ctx := t.Context()
	uow, tableRepo, factory := newOrderTableUoW(t, ctx)

	tableID := kernel.NewUUID()
	tableRepo.On("Get", ctx, tableID).
		Return(nil, errs.NewObjectNotFoundError("order table", tableID.String())).Once()

	cmd, err := commands.NewOccupyOrderTableCommand(tableID, 4)
	require.NoError(t, err)

	h := commands.NewOccupyOrderTableCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	tableRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
