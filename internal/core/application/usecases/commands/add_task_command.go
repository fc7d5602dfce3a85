package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/guard"
)

var ErrAddTaskCommandIsNotConstructed = errors.New(
	"AddTaskCommand must be created via NewAddTaskCommand constructor",
)

// AddTaskCommand represents a request to append a task to a work order.
// The station reference is optional; when present the station must exist
// and be active.
type AddTaskCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	taskID      kernel.UUID
	taskType    production.TaskType
	stationID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddTaskCommand creates a command to append a task.
// Validates the identifiers and the task type.
func NewAddTaskCommand(
	workOrderID kernel.UUID,
	taskID kernel.UUID,
	taskType production.TaskType,
	stationID *kernel.UUID,
) (AddTaskCommand, error) {
	command := AddTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setTaskID(taskID),
		command.setTaskType(taskType),
		command.setStationID(stationID),
	); err != nil {
		return AddTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddTaskCommandIsNotConstructed if validation fails.
func (c AddTaskCommand) Validate() error {
	return c.guard.Validate(ErrAddTaskCommandIsNotConstructed)
}

// WorkOrderID returns the work order to append the task to.
func (c AddTaskCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// TaskID returns the identifier for the new task.
func (c AddTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// TaskType returns the kind of work the task represents.
func (c AddTaskCommand) TaskType() production.TaskType {
	return c.taskType
}

// StationID returns the optional station the task is planned for.
func (c AddTaskCommand) StationID() *kernel.UUID {
	return c.stationID
}

func (c *AddTaskCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *AddTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *AddTaskCommand) setTaskType(taskType production.TaskType) error {
	if err := taskType.Validate(); err != nil {
		return err
	}

	c.taskType = taskType
	return nil
}

func (c *AddTaskCommand) setStationID(stationID *kernel.UUID) error {
	if stationID != nil {
		if err := stationID.Validate(); err != nil {
			return err
		}
	}

	c.stationID = stationID
	return nil
}
