package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkOrderQueryHandler retrieves a single work order read model from the
// database, tasks and rejections included.
type GetWorkOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderQueryHandler creates a handler for single-work-order queries.
// Requires a GORM database connection for query execution.
func NewGetWorkOrderQueryHandler(db *gorm.DB) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{db: db}
}

// Handle executes the query.
// Tasks come back in insertion order, rejections in recorded order.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (GetWorkOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	response, err := h.fetchWorkOrder(ctx, query.WorkOrderID())
	if err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	if response.Tasks, err = h.fetchTasks(ctx, query.WorkOrderID()); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}
	if response.Rejections, err = h.fetchRejections(ctx, query.WorkOrderID()); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetWorkOrderQueryHandler) fetchWorkOrder(ctx context.Context, workOrderID kernel.UUID) (GetWorkOrderQueryResponse, error) {
	var response GetWorkOrderQueryResponse
	var id, orderID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			stage,
			state,
			created_at,
			updated_at,
			version
		FROM work_orders
		WHERE id = ?
	`, workOrderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&orderID,
		&response.Stage,
		&response.State,
		&response.CreatedAt,
		&response.UpdatedAt,
		&response.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWorkOrderQueryResponse{}, errs.NewObjectNotFoundError("workOrderID", workOrderID)
	}
	if err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}
	if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetWorkOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetWorkOrderQueryHandler) fetchTasks(ctx context.Context, workOrderID kernel.UUID) ([]WorkOrderTaskResponse, error) {
	tasks := make([]WorkOrderTaskResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			task_type,
			station_id,
			state,
			assigned_to,
			started_at,
			finished_at,
			failure_reason
		FROM work_order_tasks
		WHERE work_order_id = ?
		ORDER BY position
	`, workOrderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var task WorkOrderTaskResponse
		var id uuid.UUID
		var stationID *uuid.UUID

		if err = rows.Scan(
			&id,
			&task.TaskType,
			&stationID,
			&task.State,
			&task.AssignedTo,
			&task.StartedAt,
			&task.FinishedAt,
			&task.FailureReason,
		); err != nil {
			return nil, err
		}

		if task.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if stationID != nil {
			sid, sidErr := kernel.UUIDFromBytes(stationID[:])
			if sidErr != nil {
				return nil, sidErr
			}
			task.StationID = &sid
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (h GetWorkOrderQueryHandler) fetchRejections(ctx context.Context, workOrderID kernel.UUID) ([]WorkOrderRejectionResponse, error) {
	rejections := make([]WorkOrderRejectionResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category,
			details,
			created_at
		FROM work_order_rejections
		WHERE work_order_id = ?
		ORDER BY position
	`, workOrderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rejection WorkOrderRejectionResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&rejection.Category,
			&rejection.Details,
			&rejection.CreatedAt,
		); err != nil {
			return nil, err
		}

		if rejection.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		rejections = append(rejections, rejection)
	}

	return rejections, rows.Err()
}
