package commands

import (
	"context"
	"time"
)

// RecordRejectionCommandHandler records a quality rejection against a work
// order, forcing it to REJECTED. The owning order catches up through the
// production outcome command, in a separate transaction.
type RecordRejectionCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewRecordRejectionCommandHandler creates a handler for rejection operations.
func NewRecordRejectionCommandHandler(uowFactory WorkOrderUoWFactory) RecordRejectionCommandHandler {
	return RecordRejectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the record-rejection command.
func (h *RecordRejectionCommandHandler) Handle(ctx context.Context, cmd RecordRejectionCommand) error {
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

	if _, err = workOrder.RecordRejection(cmd.RejectionID(), cmd.Category(), cmd.Details(), time.Now().UTC()); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, workOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
