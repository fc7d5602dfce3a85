package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetUnreconciledWorkOrdersQueryIsNotConstructed = errors.New(
	"GetUnreconciledWorkOrdersQuery must be created via NewGetUnreconciledWorkOrdersQuery constructor",
)

// GetUnreconciledWorkOrdersQuery retrieves terminal work orders whose order
// has not yet absorbed the outcome. Feeds the reconciliation job.
//
// Example:
//
//	query := NewGetUnreconciledWorkOrdersQuery()
//	handler := NewGetUnreconciledWorkOrdersQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	for _, wo := range pending {
//	    // replay the production outcome for wo.WorkOrderID
//	}
type GetUnreconciledWorkOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnreconciledWorkOrdersQuery creates a parameterless query for
// work orders awaiting reconciliation.
func NewGetUnreconciledWorkOrdersQuery() GetUnreconciledWorkOrdersQuery {
	return GetUnreconciledWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnreconciledWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreconciledWorkOrdersQueryIsNotConstructed)
}

// GetUnreconciledWorkOrdersQueryResponse pairs a terminal work order with the
// order status it is waiting on.
type GetUnreconciledWorkOrdersQueryResponse struct {
	WorkOrderID kernel.UUID
	OrderID     kernel.UUID
	State       string
	OrderStatus string
}
