package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order is created with an empty
	// item list.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order must have at least one item")
)

// Order represents a customer's purchase request. It is the aggregate root
// that manages the fulfillment lifecycle from creation through production to
// shipment or a terminal failure.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid order number
//   - The order number is immutable once assigned
//   - Must own at least one line item; items are point-in-time snapshots
//   - Status transitions follow the lifecycle graph defined on Status
//   - Status history is append-only and records every transition
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation, and maintains its
// invariants through validated methods. Orders are never deleted; rejection
// and cancellation are terminal statuses, not removals.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the unique human-readable identifier, immutable once set
	orderNumber OrderNumber

	// customerID is a weak reference to the customer service; existence is
	// not enforced here
	customerID kernel.UUID

	// status is the current state in the fulfillment lifecycle
	status Status

	// priority expresses fulfillment urgency
	priority Priority

	// notes is optional free text supplied at creation
	notes string

	// items are the order's lines in insertion order
	items []*Item

	// history is the append-only transition log
	history []*HistoryEntry

	createdAt time.Time
	updatedAt time.Time

	// version supports compare-and-swap persistence of concurrent transitions
	version int

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to
// create a valid order from scratch.
//
// The order starts in StatusNew with an initial history entry
// (from=nil, to=NEW, changedBy=SystemActor). An empty priority defaults to
// NORMAL. Items must be non-empty and individually valid.
//
// Parameters:
//   - id: unique identifier
//   - orderNumber: candidate order number (uniqueness enforced at persistence)
//   - customerID: customer reference, not validated for existence
//   - items: at least one line item
//   - priority: fulfillment urgency, "" for the default
//   - notes: optional free text
//   - now: creation instant, also stamped on the initial history entry
func NewOrder(
	id kernel.UUID,
	orderNumber OrderNumber,
	customerID kernel.UUID,
	items []*Item,
	priority Priority,
	notes string,
	now time.Time,
) (*Order, error) {
	if priority == "" {
		priority = DefaultPriority
	}

	o := &Order{
		status:        StatusNew,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setPriority(priority),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	initial, err := NewHistoryEntry(kernel.NewUUID(), nil, StatusNew, SystemActor, "", now)
	if err != nil {
		return nil, err
	}
	o.history = []*HistoryEntry{initial}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation side effects. History is restored as stored, not regenerated.
func RestoreOrder(
	id kernel.UUID,
	orderNumber OrderNumber,
	customerID kernel.UUID,
	status Status,
	priority Priority,
	notes string,
	items []*Item,
	history []*HistoryEntry,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		status.Validate(),
		o.setPriority(priority),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	o.status = status

	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}
	o.history = append([]*HistoryEntry(nil), history...)

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when reconstructing orders from persistence to
// prevent bypassing validation with a struct literal.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() OrderNumber {
	return o.orderNumber
}

// CustomerID returns the customer reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the fulfillment priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Notes returns the optional order notes.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the order's line items in insertion order.
// The returned slice is a copy; the items themselves are shared.
func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

// History returns the append-only status history in recorded order.
// The returned slice is a copy; the entries themselves are shared.
func (o *Order) History() []*HistoryEntry {
	return append([]*HistoryEntry(nil), o.history...)
}

// Total returns the sum of all line totals.
func (o *Order) Total() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the aggregate version used for optimistic concurrency.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo moves the order to a new lifecycle status.
//
// Behavior:
//   - requesting the current status is a retry-tolerant no-op: it succeeds,
//     appends no history, and returns changed=false
//   - a target not reachable per the lifecycle graph fails with an
//     InvalidTransitionError and leaves the order untouched
//   - on success the status changes, a history entry is appended, updatedAt
//     is stamped, the version is bumped, and changed=true is returned
//
// Parameters:
//   - to: target status
//   - changedBy: actor identifier (user id, or SystemActor with an optional
//     correlation suffix)
//   - reason: optional explanation recorded in history
//   - now: transition instant
func (o *Order) TransitionTo(to Status, changedBy string, reason string, now time.Time) (bool, error) {
	if err := to.Validate(); err != nil {
		return false, err
	}
	if changedBy == "" {
		return false, errs.NewValueIsRequiredError("changedBy")
	}

	if to == o.status {
		return false, nil
	}

	if !o.status.CanTransitionTo(to) {
		return false, errs.NewInvalidTransitionError("order", o.status.String(), to.String())
	}

	from := o.status
	entry, err := NewHistoryEntry(kernel.NewUUID(), &from, to, changedBy, reason, now)
	if err != nil {
		return false, err
	}

	o.status = to
	o.history = append(o.history, entry)
	o.updatedAt = now
	o.version++
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]*Item(nil), items...)
	return nil
}
