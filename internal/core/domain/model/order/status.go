package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	NEW ──> CONFIRMED ──> IN_PRODUCTION ──> PACKED ──> SHIPPED ──> CLOSED
//	 │          │               │              │          │
//	 └──────────┴───────────────┴──────────────┴──────────┴──> REJECTED
//	 └──────────┴───────────────┴──────────────┴──────────┴──> CANCELLED
//
// CLOSED, REJECTED, and CANCELLED are terminal: no transition leaves them.
// Statuses are string-backed so they persist and serialize in their wire form.
type Status string

const (
	// StatusNew is the initial status of every order.
	StatusNew Status = "NEW"

	// StatusConfirmed indicates the order has been accepted for fulfillment.
	StatusConfirmed Status = "CONFIRMED"

	// StatusInProduction indicates a work order is being executed for the order.
	StatusInProduction Status = "IN_PRODUCTION"

	// StatusPacked indicates production finished and the goods are packed.
	StatusPacked Status = "PACKED"

	// StatusShipped indicates the order has left the facility.
	StatusShipped Status = "SHIPPED"

	// StatusClosed is the terminal success status.
	StatusClosed Status = "CLOSED"

	// StatusRejected is a terminal failure status, reached when production
	// records a rejection that cannot be recovered.
	StatusRejected Status = "REJECTED"

	// StatusCancelled is a terminal status for orders withdrawn by the
	// customer or an operator.
	StatusCancelled Status = "CANCELLED"
)

// successors returns the forward edge of the lifecycle graph for each status.
// REJECTED and CANCELLED are additionally reachable from every non-terminal
// status; CanTransitionTo handles that rule.
func successors() map[Status]Status {
	return map[Status]Status{
		StatusNew:          StatusConfirmed,
		StatusConfirmed:    StatusInProduction,
		StatusInProduction: StatusPacked,
		StatusPacked:       StatusShipped,
		StatusShipped:      StatusClosed,
	}
}

// getValidStatuses returns the set of statuses accepted from external input.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusNew:          {},
		StatusConfirmed:    {},
		StatusInProduction: {},
		StatusPacked:       {},
		StatusShipped:      {},
		StatusClosed:       {},
		StatusRejected:     {},
		StatusCancelled:    {},
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// This is used to vet statuses arriving from external sources (API, database)
// before they enter the domain.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusRejected || s == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle graph permits moving from the
// receiver to the target status.
//
// Rules:
//   - the happy path advances one step at a time: NEW -> CONFIRMED ->
//     IN_PRODUCTION -> PACKED -> SHIPPED -> CLOSED
//   - REJECTED and CANCELLED are reachable from any non-terminal status
//   - a terminal status permits nothing
//
// A same-status "transition" is not an edge of the graph; the aggregate
// treats it as a retry-tolerant no-op before consulting this method.
func (s Status) CanTransitionTo(to Status) bool {
	if s.IsTerminal() {
		return false
	}

	if to == StatusRejected || to == StatusCancelled {
		return true
	}

	return successors()[s] == to
}
