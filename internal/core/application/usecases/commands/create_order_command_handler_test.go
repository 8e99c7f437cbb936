package commands_test

import (
	"errors"
	"testing"

	"bladeshop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyNewOrder", ctx, "Chef 210", "2025-03-01").Once()

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	notifier.AssertNotCalled(t, "NotifyNewOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("connection refused")).Once()
	uow.On("Rollback", ctx).Return(nil).Maybe()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	notifier.AssertNotCalled(t, "NotifyNewOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("insert failed")).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "NotifyNewOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(errors.New("commit failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewCreateOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	notifier.AssertNotCalled(t, "NotifyNewOrder", mock.Anything, mock.Anything, mock.Anything)
}
