package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartTaskCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	wo, taskID := workOrderWithTask(t)
	cmd, err := commands.NewStartTaskCommand(wo.ID(), taskID, "worker-7")
	require.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	expectLoadAndUpdate(ctx, uow, repo, wo)
	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartTaskCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	task, err := wo.FindTask(taskID)
	require.NoError(t, err)
	assert.Equal(t, production.TaskDoing, task.State())
	assert.Equal(t, "worker-7", task.AssignedTo())
}

func TestNewStartTaskCommand_MissingWorker(t *testing.T) {
	_, err := commands.NewStartTaskCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAssignedToIsRequired)
}
