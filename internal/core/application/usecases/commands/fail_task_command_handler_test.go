package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	wo, taskID := workOrderWithTask(t)
	cmd, err := commands.NewFailTaskCommand(wo.ID(), taskID, "jig misaligned")
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	expectLoadAndUpdate(ctx, uow, repo, wo)
	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFailTaskCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	task, err := wo.FindTask(taskID)
	require.NoError(t, err)
	assert.Equal(t, production.TaskFailed, task.State())
	// a failed task does not fail the work order
	assert.Equal(t, production.WorkOrderOpen, wo.State())
}

func TestNewFailTaskCommand_MissingReason(t *testing.T) {
	_, err := commands.NewFailTaskCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrFailureReasonIsRequired)
}
