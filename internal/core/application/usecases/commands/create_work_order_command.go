package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderCommand represents a request to open a production work order
// for an existing order. Each order gets at most one work order.
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	orderID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to open a work order.
// Validates both identifiers.
func NewCreateWorkOrderCommand(workOrderID kernel.UUID, orderID kernel.UUID) (CreateWorkOrderCommand, error) {
	command := CreateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkOrderID(workOrderID),
		command.setOrderID(orderID),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWorkOrderCommandIsNotConstructed if validation fails.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the identifier for the new work order.
func (c CreateWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// OrderID returns the order the work order is produced for.
func (c CreateWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CreateWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}

func (c *CreateWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
