package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func workOrderWithTask(t *testing.T) (*production.WorkOrder, kernel.UUID) {
	t.Helper()
	wo := newStoredWorkOrder(t)
	taskID := kernel.NewUUID()
	_, err := wo.AddTask(taskID, production.TaskTypeBuild, nil, time.Now())
	require.NoError(t, err)
	return wo, taskID
}

// expectLoadAndUpdate wires the usual load-mutate-save expectations shared by
// the task lifecycle handler tests.
func expectLoadAndUpdate(ctx any, uow *MockWorkOrderUoW, repo *MockWorkOrderRepository, wo *production.WorkOrder) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, wo.ID()).Return(wo, nil).Once(),
		repo.On("Update", ctx, wo).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestCompleteTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	wo, taskID := workOrderWithTask(t)
	cmd, err := commands.NewCompleteTaskCommand(wo.ID(), taskID)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	expectLoadAndUpdate(ctx, uow, repo, wo)
	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTaskCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, production.WorkOrderDone, wo.State())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteTaskCommandHandler_Handle_TerminalWorkOrder(t *testing.T) {
	ctx := t.Context()
	wo, taskID := workOrderWithTask(t)
	_, err := wo.RecordRejection(kernel.NewUUID(), "QC_FAIL", "cracked weld", time.Now())
	require.NoError(t, err)
	cmd, err := commands.NewCompleteTaskCommand(wo.ID(), taskID)
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, wo.ID()).Return(wo, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteTaskCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTerminalState)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
