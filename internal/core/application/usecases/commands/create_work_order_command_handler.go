package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"
)

// CreateWorkOrderCommandHandler opens production work orders for orders.
// Enforces the one-work-order-per-order rule with an existence check inside
// the same transaction as the insert; the unique index on the order reference
// backs the check against racing creators.
type CreateWorkOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateWorkOrderCommandHandler creates a handler for work order creation.
// Requires a UoWFactory because the handler reads the order while writing the
// work order.
func NewCreateWorkOrderCommandHandler(uowFactory UoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the work order creation command.
// Verifies the order exists, refuses a second work order for the same order
// with a duplicate work order error, and persists the new aggregate.
func (h *CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	workOrderRepo := uow.WorkOrderRepository()
	_, err := workOrderRepo.GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return errs.NewDuplicateWorkOrderError(cmd.OrderID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	workOrder, err := production.NewWorkOrder(cmd.WorkOrderID(), cmd.OrderID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = workOrderRepo.Add(ctx, workOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
