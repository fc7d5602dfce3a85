package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnreconciledWorkOrdersQueryHandler finds terminal work orders whose
// order still shows a pre-outcome status. A DONE work order is reconciled
// once its order reached PACKED or further; a REJECTED one once the order
// is REJECTED. Orders that went terminal on their own (cancelled) keep
// showing up here so the conflict stays operator-visible.
type GetUnreconciledWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnreconciledWorkOrdersQueryHandler creates a handler for
// reconciliation backlog queries.
func NewGetUnreconciledWorkOrdersQueryHandler(db *gorm.DB) GetUnreconciledWorkOrdersQueryHandler {
	return GetUnreconciledWorkOrdersQueryHandler{db: db}
}

// Handle executes the query.
// Returns the backlog ordered by work order creation time, oldest first.
func (h GetUnreconciledWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnreconciledWorkOrdersQuery,
) ([]GetUnreconciledWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	backlog := make([]GetUnreconciledWorkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			wo.id,
			wo.order_id,
			wo.state,
			o.status
		FROM work_orders wo
		JOIN orders o ON o.id = wo.order_id
		WHERE (wo.state = 'DONE' AND o.status NOT IN ('PACKED', 'SHIPPED', 'CLOSED'))
		   OR (wo.state = 'REJECTED' AND o.status != 'REJECTED')
		ORDER BY wo.created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetUnreconciledWorkOrdersQueryResponse
		var workOrderID, orderID uuid.UUID

		if err = rows.Scan(
			&workOrderID,
			&orderID,
			&entry.State,
			&entry.OrderStatus,
		); err != nil {
			return nil, err
		}

		if entry.WorkOrderID, err = kernel.UUIDFromBytes(workOrderID[:]); err != nil {
			return nil, err
		}
		if entry.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		backlog = append(backlog, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backlog, nil
}
