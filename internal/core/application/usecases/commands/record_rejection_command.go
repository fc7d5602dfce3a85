package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordRejectionCommandIsNotConstructed = errors.New(
		"RecordRejectionCommand must be created via NewRecordRejectionCommand constructor",
	)
	ErrCategoryIsRequired = errors.New("category is required")
	ErrDetailsAreRequired = errors.New("details are required")
)

// RecordRejectionCommand represents quality control rejecting a work order.
// Recording a rejection forces the work order to REJECTED regardless of how
// many tasks are still open.
type RecordRejectionCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	rejectionID kernel.UUID
	category    string
	details     string

	guard guard.ConstructorGuard
}

// NewRecordRejectionCommand creates a command to record a rejection.
// Category and details are both mandatory.
func NewRecordRejectionCommand(
	workOrderID kernel.UUID,
	rejectionID kernel.UUID,
	category string,
	details string,
) (RecordRejectionCommand, error) {
	command := RecordRejectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setRejectionID(rejectionID),
		command.setCategory(category),
		command.setDetails(details),
	); err != nil {
		return RecordRejectionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordRejectionCommand) Validate() error {
	return c.guard.Validate(ErrRecordRejectionCommandIsNotConstructed)
}

// WorkOrderID returns the work order being rejected.
func (c RecordRejectionCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// RejectionID returns the identifier for the new rejection record.
func (c RecordRejectionCommand) RejectionID() kernel.UUID {
	return c.rejectionID
}

// Category returns the rejection classification.
func (c RecordRejectionCommand) Category() string {
	return c.category
}

// Details returns the free-text description of the defect.
func (c RecordRejectionCommand) Details() string {
	return c.details
}

func (c *RecordRejectionCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *RecordRejectionCommand) setRejectionID(rejectionID kernel.UUID) error {
	if err := rejectionID.Validate(); err != nil {
		return err
	}

	c.rejectionID = rejectionID
	return nil
}

func (c *RecordRejectionCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *RecordRejectionCommand) setDetails(details string) error {
	if details == "" {
		return ErrDetailsAreRequired
	}

	c.details = details
	return nil
}
