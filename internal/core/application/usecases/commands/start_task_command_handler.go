package commands

import (
	"context"
	"time"
)

// StartTaskCommandHandler moves a task from TODO to DOING and records the
// worker and the start instant.
type StartTaskCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewStartTaskCommandHandler creates a handler for task start operations.
func NewStartTaskCommandHandler(uowFactory WorkOrderUoWFactory) StartTaskCommandHandler {
	return StartTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-task command.
func (h *StartTaskCommandHandler) Handle(ctx context.Context, cmd StartTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	workOrderRepo := uow.WorkOrderRepository()
	workOrder, err := workOrderRepo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if err = workOrder.StartTask(cmd.TaskID(), cmd.AssignedTo(), time.Now().UTC()); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, workOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
