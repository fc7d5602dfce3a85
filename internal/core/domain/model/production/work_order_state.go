package production

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// WorkOrderState represents the lifecycle state of a work order.
//
// State transitions:
//
//	OPEN ──> IN_PROGRESS ──> DONE
//	 │            │
//	 └────────────┴──> REJECTED
//
// OPEN to IN_PROGRESS and IN_PROGRESS to DONE are derived from task
// completion, never requested by a caller. REJECTED is forced by recording a
// rejection. DONE and REJECTED are terminal.
type WorkOrderState string

const (
	// WorkOrderOpen is the initial state: created, no task finished yet.
	WorkOrderOpen WorkOrderState = "OPEN"

	// WorkOrderInProgress indicates at least one task has completed.
	WorkOrderInProgress WorkOrderState = "IN_PROGRESS"

	// WorkOrderDone is the terminal success state: every task completed.
	WorkOrderDone WorkOrderState = "DONE"

	// WorkOrderRejected is the terminal failure state, forced by a rejection.
	WorkOrderRejected WorkOrderState = "REJECTED"
)

// Validate checks if the state is one of the defined work order states.
func (s WorkOrderState) Validate() error {
	switch s {
	case WorkOrderOpen, WorkOrderInProgress, WorkOrderDone, WorkOrderRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("workOrderState", fmt.Errorf("%q is not a valid work order state", string(s)))
	}
}

// String returns the wire form of the state.
func (s WorkOrderState) String() string {
	return string(s)
}

// IsTerminal reports whether the state permits no further mutations.
func (s WorkOrderState) IsTerminal() bool {
	return s == WorkOrderDone || s == WorkOrderRejected
}
