package commands

import (
	"context"
	"time"
)

// FailTaskCommandHandler marks a task FAILED with the reported reason.
type FailTaskCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewFailTaskCommandHandler creates a handler for task failure operations.
func NewFailTaskCommandHandler(uowFactory WorkOrderUoWFactory) FailTaskCommandHandler {
	return FailTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fail-task command.
func (h *FailTaskCommandHandler) Handle(ctx context.Context, cmd FailTaskCommand) error {
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

	if err = workOrder.FailTask(cmd.TaskID(), cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, workOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
