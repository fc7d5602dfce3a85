package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// SystemActor identifies system-initiated status changes in history entries.
// Gateway-proxied system calls append their correlation id, e.g.
// "system:req-4f2a".
const SystemActor = "system"

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")

// HistoryEntry records one status transition of an order. Entries are
// append-only: they are never mutated or deleted, and ordering them by
// CreatedAt reconstructs the order's full transition timeline.
type HistoryEntry struct {
	id         kernel.UUID
	fromStatus *Status // nil only for the initial NEW entry
	toStatus   Status
	changedBy  string
	reason     string
	createdAt  time.Time

	isConstructed bool
}

// NewHistoryEntry creates a history entry for a transition.
// fromStatus is nil for the initial entry written at order creation.
func NewHistoryEntry(
	id kernel.UUID,
	fromStatus *Status,
	toStatus Status,
	changedBy string,
	reason string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if fromStatus != nil {
		if err := fromStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if err := toStatus.Validate(); err != nil {
		return nil, err
	}
	if changedBy == "" {
		return nil, errs.NewValueIsRequiredError("changedBy")
	}

	return &HistoryEntry{
		id:            id,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		changedBy:     changedBy,
		reason:        reason,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreHistoryEntry reconstructs a history entry from persistence.
func RestoreHistoryEntry(
	id kernel.UUID,
	fromStatus *Status,
	toStatus Status,
	changedBy string,
	reason string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	return NewHistoryEntry(id, fromStatus, toStatus, changedBy, reason, createdAt)
}

// Validate ensures the entry was created through a factory function.
func (h *HistoryEntry) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

// FromStatus returns the status the order left, or nil for the initial entry.
func (h *HistoryEntry) FromStatus() *Status {
	return h.fromStatus
}

// ToStatus returns the status the order entered.
func (h *HistoryEntry) ToStatus() Status {
	return h.toStatus
}

// ChangedBy returns the actor that requested the transition.
func (h *HistoryEntry) ChangedBy() string {
	return h.changedBy
}

// Reason returns the optional transition reason.
func (h *HistoryEntry) Reason() string {
	return h.reason
}

// CreatedAt returns when the transition was recorded.
func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}
