package production

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrRejectionIsNotConstructed is returned when a Rejection instance was not
// created through the NewRejection or RestoreRejection factory functions.
var ErrRejectionIsNotConstructed = errors.New("Rejection must be created via NewRejection or RestoreRejection")

// Rejection records a quality or process failure on a work order.
// Rejections are append-only: recording one forces the owning work order
// into its terminal REJECTED state, and they are never edited afterwards.
type Rejection struct {
	id        kernel.UUID
	category  string
	details   string
	createdAt time.Time

	isConstructed bool
}

// NewRejection creates a rejection record. Category and details are both required.
func NewRejection(id kernel.UUID, category string, details string, createdAt time.Time) (*Rejection, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}
	if details == "" {
		return nil, errs.NewValueIsRequiredError("details")
	}

	return &Rejection{
		id:            id,
		category:      category,
		details:       details,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreRejection reconstructs a rejection from persistence.
func RestoreRejection(id kernel.UUID, category string, details string, createdAt time.Time) (*Rejection, error) {
	return NewRejection(id, category, details, createdAt)
}

// Validate ensures the Rejection was created through a factory function.
func (r *Rejection) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRejectionIsNotConstructed
	}
	return nil
}

// ID returns the rejection's unique identifier.
func (r *Rejection) ID() kernel.UUID {
	return r.id
}

// Category returns the rejection category, e.g. "QC_FAIL".
func (r *Rejection) Category() string {
	return r.category
}

// Details returns the free-text description of the failure.
func (r *Rejection) Details() string {
	return r.details
}

// CreatedAt returns when the rejection was recorded.
func (r *Rejection) CreatedAt() time.Time {
	return r.createdAt
}
