package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrStartTaskCommandIsNotConstructed = errors.New(
		"StartTaskCommand must be created via NewStartTaskCommand constructor",
	)
	ErrAssignedToIsRequired = errors.New("assignedTo is required")
)

// StartTaskCommand represents a station worker picking up a task.
type StartTaskCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	taskID      kernel.UUID
	assignedTo  string

	guard guard.ConstructorGuard
}

// NewStartTaskCommand creates a command to start a task.
// Validates the identifiers and that a worker is named.
func NewStartTaskCommand(workOrderID kernel.UUID, taskID kernel.UUID, assignedTo string) (StartTaskCommand, error) {
	command := StartTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setTaskID(taskID),
		command.setAssignedTo(assignedTo),
	); err != nil {
		return StartTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTaskCommand) Validate() error {
	return c.guard.Validate(ErrStartTaskCommandIsNotConstructed)
}

// WorkOrderID returns the work order owning the task.
func (c StartTaskCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// TaskID returns the task to start.
func (c StartTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// AssignedTo returns the worker picking the task up.
func (c StartTaskCommand) AssignedTo() string {
	return c.assignedTo
}

func (c *StartTaskCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *StartTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *StartTaskCommand) setAssignedTo(assignedTo string) error {
	if assignedTo == "" {
		return ErrAssignedToIsRequired
	}

	c.assignedTo = assignedTo
	return nil
}
