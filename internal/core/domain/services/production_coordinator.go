package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"
)

// ProductionCoordinator is a domain service that reflects a work order's
// terminal state back onto the order that owns it.
//
// Business rules:
//   - A DONE work order moves its order to Packed
//   - A REJECTED work order moves its order to Rejected, carrying the
//     latest rejection's category and details as the history reason
//   - A non-terminal work order causes no order change
//   - An order already in the proposed status is left untouched (the
//     coordinator runs repeatedly and must tolerate replays)
//
// When the order cannot reach the proposed status from where it is (for
// example the shop cancelled it while production was still running), the
// coordinator surfaces a ConflictError instead of forcing the transition.
// Resolution of such conflicts is a human decision, not an automatic one.
type ProductionCoordinator struct{}

// NewProductionCoordinator creates a new ProductionCoordinator instance.
func NewProductionCoordinator() ProductionCoordinator {
	return ProductionCoordinator{}
}

// Reconcile applies the work order's outcome to the order.
// It returns true when the order changed and must be persisted.
func (p ProductionCoordinator) Reconcile(aggregate *order.Order, workOrder *production.WorkOrder, now time.Time) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}
	if err := workOrder.Validate(); err != nil {
		return false, err
	}
	if !aggregate.ID().IsEqual(workOrder.OrderID()) {
		return false, errs.NewConflictError("workOrder",
			fmt.Sprintf("work order %s does not belong to order %s", workOrder.ID(), aggregate.ID()))
	}

	target, reason, ok := p.proposal(workOrder)
	if !ok {
		return false, nil
	}

	if p.alreadyApplied(aggregate.Status(), target) {
		return false, nil
	}

	if !aggregate.Status().CanTransitionTo(target) {
		return false, errs.NewConflictError("order",
			fmt.Sprintf("order %s is %s and cannot follow its work order to %s",
				aggregate.ID(), aggregate.Status(), target))
	}

	return aggregate.TransitionTo(target, order.SystemActor, reason, now)
}

// alreadyApplied reports whether the order has absorbed the proposed
// status on an earlier run. An order that shipped or closed after packing
// is further along than the proposal, not in conflict with it.
func (p ProductionCoordinator) alreadyApplied(current order.Status, target order.Status) bool {
	if current == target {
		return true
	}
	if target == order.StatusPacked {
		return current == order.StatusShipped || current == order.StatusClosed
	}
	return false
}

// proposal maps a work order state to the order status it calls for.
func (p ProductionCoordinator) proposal(workOrder *production.WorkOrder) (order.Status, string, bool) {
	switch workOrder.State() {
	case production.WorkOrderDone:
		return order.StatusPacked, "production completed", true
	case production.WorkOrderRejected:
		reason := "rejected in production"
		if rejection := workOrder.LatestRejection(); rejection != nil {
			reason = fmt.Sprintf("%s: %s", rejection.Category(), rejection.Details())
		}
		return order.StatusRejected, reason, true
	default:
		return "", "", false
	}
}
