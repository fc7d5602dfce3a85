package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ErrStationIsNotActive is returned when a task names a station that exists
// but no longer accepts work. It unwraps to errs.ErrValueIsInvalid so
// transports classify it as a caller fault.
var ErrStationIsNotActive = errs.NewValueIsInvalidErrorWithCause(
	"stationID", errors.New("station is not active"))

// AddTaskCommandHandler appends tasks to open work orders.
// When a station is named the handler checks it exists and is active; the
// reference stays weak, the task does not follow later station changes.
type AddTaskCommandHandler struct {
	uowFactory ProductionUoWFactory
}

// NewAddTaskCommandHandler creates a handler for task creation operations.
// Requires a ProductionUoWFactory because the handler consults stations while
// writing the work order.
func NewAddTaskCommandHandler(uowFactory ProductionUoWFactory) AddTaskCommandHandler {
	return AddTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-task command.
// Loads the work order, verifies the optional station, appends the task and
// persists the aggregate.
func (h *AddTaskCommandHandler) Handle(ctx context.Context, cmd AddTaskCommand) error {
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

	if cmd.StationID() != nil {
		station, err := uow.StationRepository().Get(ctx, *cmd.StationID())
		if err != nil {
			return err
		}
		if !station.IsActive() {
			return ErrStationIsNotActive
		}
	}

	workOrderRepo := uow.WorkOrderRepository()
	workOrder, err := workOrderRepo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return err
	}

	if _, err = workOrder.AddTask(cmd.TaskID(), cmd.TaskType(), cmd.StationID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = workOrderRepo.Update(ctx, workOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
