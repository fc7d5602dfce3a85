package commands

import (
	"context"
	"time"
)

// CompleteTaskCommandHandler marks a task DONE. The work order derives its
// own state from the tasks; the handler never sets it directly.
type CompleteTaskCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCompleteTaskCommandHandler creates a handler for task completion operations.
func NewCompleteTaskCommandHandler(uowFactory WorkOrderUoWFactory) CompleteTaskCommandHandler {
	return CompleteTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete-task command.
func (h *CompleteTaskCommandHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) error {
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

	if err = workOrder.CompleteTask(cmd.TaskID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, workOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
