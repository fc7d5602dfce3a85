package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Priority expresses how urgently an order should be fulfilled.
// It carries no state machine; it is set at creation and may inform
// scheduling decisions downstream.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// DefaultPriority is applied when an order is created without an explicit priority.
const DefaultPriority = PriorityNormal

// Validate checks if the Priority value is one of the defined levels.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", string(p)))
	}
}

// String returns the wire form of the priority.
func (p Priority) String() string {
	return string(p)
}
