package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrFailTaskCommandIsNotConstructed = errors.New(
		"FailTaskCommand must be created via NewFailTaskCommand constructor",
	)
	ErrFailureReasonIsRequired = errors.New("failure reason is required")
)

// FailTaskCommand represents a station reporting a failed task.
// A failed task never fails the work order on its own; escalation happens
// through an explicit rejection.
type FailTaskCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	taskID      kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewFailTaskCommand creates a command to fail a task.
// The reason is mandatory.
func NewFailTaskCommand(workOrderID kernel.UUID, taskID kernel.UUID, reason string) (FailTaskCommand, error) {
	command := FailTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setTaskID(taskID),
		command.setReason(reason),
	); err != nil {
		return FailTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FailTaskCommand) Validate() error {
	return c.guard.Validate(ErrFailTaskCommandIsNotConstructed)
}

// WorkOrderID returns the work order owning the task.
func (c FailTaskCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// TaskID returns the task to fail.
func (c FailTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Reason returns what went wrong at the station.
func (c FailTaskCommand) Reason() string {
	return c.reason
}

func (c *FailTaskCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *FailTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *FailTaskCommand) setReason(reason string) error {
	if reason == "" {
		return ErrFailureReasonIsRequired
	}

	c.reason = reason
	return nil
}
