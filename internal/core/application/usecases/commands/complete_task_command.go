package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteTaskCommandIsNotConstructed = errors.New(
	"CompleteTaskCommand must be created via NewCompleteTaskCommand constructor",
)

// CompleteTaskCommand represents a station reporting a finished task.
// Completing the last open task moves the whole work order to DONE.
type CompleteTaskCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	taskID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteTaskCommand creates a command to complete a task.
func NewCompleteTaskCommand(workOrderID kernel.UUID, taskID kernel.UUID) (CompleteTaskCommand, error) {
	command := CompleteTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setTaskID(taskID),
	); err != nil {
		return CompleteTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaskCommandIsNotConstructed)
}

// WorkOrderID returns the work order owning the task.
func (c CompleteTaskCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// TaskID returns the task to complete.
func (c CompleteTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c *CompleteTaskCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *CompleteTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}
