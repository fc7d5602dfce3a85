package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves one work order with its tasks and rejections.
type GetWorkOrderQuery struct {
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates a query for a single work order.
func NewGetWorkOrderQuery(workOrderID kernel.UUID) (GetWorkOrderQuery, error) {
	if err := workOrderID.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}

	return GetWorkOrderQuery{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// WorkOrderID returns the work order to fetch.
func (q GetWorkOrderQuery) WorkOrderID() kernel.UUID {
	return q.workOrderID
}

// GetWorkOrderQueryResponse is the work order read model.
type GetWorkOrderQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Stage      string
	State      string
	Tasks      []WorkOrderTaskResponse
	Rejections []WorkOrderRejectionResponse
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int
}

// WorkOrderTaskResponse is one task in the read model.
type WorkOrderTaskResponse struct {
	ID            kernel.UUID
	TaskType      string
	StationID     *kernel.UUID
	State         string
	AssignedTo    string
	StartedAt     *time.Time
	FinishedAt    *time.Time
	FailureReason string
}

// WorkOrderRejectionResponse is one rejection record in the read model.
type WorkOrderRejectionResponse struct {
	ID        kernel.UUID
	Category  string
	Details   string
	CreatedAt time.Time
}
