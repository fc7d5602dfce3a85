package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/services"
)

// ProductionOutcomeCommandHandler carries a work order's terminal state over
// to the owning order. The ProductionCoordinator decides what, if anything,
// the order should do; the handler persists the result.
//
// Conflicts (for example a cancelled order whose work order finished anyway)
// surface as errors for the caller to log and escalate, never silently.
//
// Example:
//
//	handler := NewProductionOutcomeCommandHandler(uowFactory)
//	cmd, _ := NewProductionOutcomeCommand(workOrderID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // operator attention needed, do not retry blindly
//	}
type ProductionOutcomeCommandHandler struct {
	uowFactory UoWFactory
}

// NewProductionOutcomeCommandHandler creates a handler for outcome propagation.
// Requires a UoWFactory because the handler reads the work order while
// writing the order.
func NewProductionOutcomeCommandHandler(uowFactory UoWFactory) ProductionOutcomeCommandHandler {
	return ProductionOutcomeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the production outcome command.
// Loads both aggregates, lets the coordinator reconcile them, and persists
// the order only when it changed.
func (h *ProductionOutcomeCommandHandler) Handle(ctx context.Context, cmd ProductionOutcomeCommand) error {
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

	workOrder, err := uow.WorkOrderRepository().Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, workOrder.OrderID())
	if err != nil {
		return err
	}

	changed, err := services.NewProductionCoordinator().Reconcile(aggregate, workOrder, time.Now().UTC())
	if err != nil {
		return err
	}

	if changed {
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
