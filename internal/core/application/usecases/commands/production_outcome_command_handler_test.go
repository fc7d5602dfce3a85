package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doneWorkOrderFor(t *testing.T, orderID kernel.UUID) *production.WorkOrder {
	t.Helper()
	wo, err := production.NewWorkOrder(kernel.NewUUID(), orderID, time.Now())
	require.NoError(t, err)
	taskID := kernel.NewUUID()
	_, err = wo.AddTask(taskID, production.TaskTypeBuild, nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, wo.CompleteTask(taskID, time.Now()))
	return wo
}

func TestProductionOutcomeCommandHandler_Handle_DonePacksOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.StatusInProduction)
	wo := doneWorkOrderFor(t, aggregate.ID())
	cmd, err := commands.NewProductionOutcomeCommand(wo.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workOrderRepo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		workOrderRepo.On("Get", ctx, wo.ID()).Return(wo, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProductionOutcomeCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusPacked, aggregate.Status())
	orderRepo.AssertExpectations(t)
}

func TestProductionOutcomeCommandHandler_Handle_ReplayIsNoOp(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.StatusPacked)
	wo := doneWorkOrderFor(t, aggregate.ID())
	cmd, err := commands.NewProductionOutcomeCommand(wo.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workOrderRepo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		workOrderRepo.On("Get", ctx, wo.ID()).Return(wo, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProductionOutcomeCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProductionOutcomeCommandHandler_Handle_CancelledOrderConflicts(t *testing.T) {
	ctx := t.Context()
	aggregate := newStoredOrder(t, order.StatusNew)
	_, err := aggregate.TransitionTo(order.StatusCancelled, "customer", "changed their mind", time.Now())
	require.NoError(t, err)
	wo := doneWorkOrderFor(t, aggregate.ID())
	cmd, err := commands.NewProductionOutcomeCommand(wo.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	workOrderRepo := new(MockWorkOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(workOrderRepo).Once(),
		workOrderRepo.On("Get", ctx, wo.ID()).Return(wo, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProductionOutcomeCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.StatusCancelled, aggregate.Status())
}
