package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrProductionOutcomeCommandIsNotConstructed = errors.New(
	"ProductionOutcomeCommand must be created via NewProductionOutcomeCommand constructor",
)

// ProductionOutcomeCommand represents a request to propagate a work order's
// terminal state onto the order that owns it. Safe to replay: an order that
// already caught up is left untouched.
type ProductionOutcomeCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProductionOutcomeCommand creates a command to propagate a work order outcome.
func NewProductionOutcomeCommand(workOrderID kernel.UUID) (ProductionOutcomeCommand, error) {
	command := ProductionOutcomeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWorkOrderID(workOrderID); err != nil {
		return ProductionOutcomeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProductionOutcomeCommand) Validate() error {
	return c.guard.Validate(ErrProductionOutcomeCommandIsNotConstructed)
}

// WorkOrderID returns the work order whose outcome is propagated.
func (c ProductionOutcomeCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c *ProductionOutcomeCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}

	c.workOrderID = workOrderID
	return nil
}
