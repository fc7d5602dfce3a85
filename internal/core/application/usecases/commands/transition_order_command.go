package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrChangedByIsRequired = errors.New("changedBy is required")
)

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status. The actor is recorded in the status history.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	to        order.Status
	changedBy string
	reason    string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// Validates the order id, the target status, and that an actor is named.
// The reason is optional.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	to order.Status,
	changedBy string,
	reason string,
) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		guard:  guard.NewConstructorGuard(),
		reason: reason,
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTo(to),
		command.setChangedBy(changedBy),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// To returns the target status.
func (c TransitionOrderCommand) To() order.Status {
	return c.to
}

// ChangedBy returns the actor requesting the transition.
func (c TransitionOrderCommand) ChangedBy() string {
	return c.changedBy
}

// Reason returns the optional free-text reason.
func (c TransitionOrderCommand) Reason() string {
	return c.reason
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTo(to order.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	c.to = to
	return nil
}

func (c *TransitionOrderCommand) setChangedBy(changedBy string) error {
	if changedBy == "" {
		return ErrChangedByIsRequired
	}

	c.changedBy = changedBy
	return nil
}
