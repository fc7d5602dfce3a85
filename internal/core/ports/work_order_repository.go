package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"
)

// WorkOrderRepository defines the persistence contract for work order aggregates.
// A work order is always loaded whole: tasks and rejections included.
type WorkOrderRepository interface {
	// Add persists a new work order aggregate to storage.
	// Returns a duplicate work order error when the referenced order
	// already has a work order.
	Add(ctx context.Context, aggregate *production.WorkOrder) error

	// Update persists changes to an existing work order aggregate.
	// The write is conditional on the stored version matching the version
	// the aggregate was loaded with.
	Update(ctx context.Context, aggregate *production.WorkOrder) error

	// Get retrieves a work order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*production.WorkOrder, error)

	// GetByOrderID retrieves the work order attached to the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*production.WorkOrder, error)

	// GetAllInState retrieves all work orders currently in the given state,
	// ordered by creation time.
	GetAllInState(ctx context.Context, state production.WorkOrderState) ([]*production.WorkOrder, error)
}
