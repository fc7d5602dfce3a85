package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"fulfillment/internal/pkg/errs"
)

// orderNumberPattern matches the human-readable order number format:
// "OF-<year>-<6 digits>".
var orderNumberPattern = regexp.MustCompile(`^OF-\d{4}-\d{6}$`)

// OrderNumber is the unique, human-readable identifier assigned to an order
// at creation. It is immutable once assigned.
//
// The generator draws a random 6-digit suffix; uniqueness is guaranteed by
// the database unique constraint plus a bounded generate-and-retry loop in
// the create handler, not by the randomness itself.
type OrderNumber struct {
	value string
}

// NewOrderNumber validates and wraps an order number in wire form.
func NewOrderNumber(value string) (OrderNumber, error) {
	if value == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if !orderNumberPattern.MatchString(value) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%q does not match OF-YYYY-NNNNNN", value),
		)
	}
	return OrderNumber{value: value}, nil
}

// GenerateOrderNumber produces a candidate order number for the given moment.
// Callers must treat the result as a candidate: persist it under a unique
// constraint and regenerate on collision.
func GenerateOrderNumber(now time.Time) OrderNumber {
	return OrderNumber{value: fmt.Sprintf("OF-%d-%06d", now.Year(), rand.IntN(1_000_000))}
}

// String returns the wire form, e.g. "OF-2026-042137".
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks that the order number was constructed and matches the format.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if !orderNumberPattern.MatchString(n.value) {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%q does not match OF-YYYY-NNNNNN", n.value),
		)
	}
	return nil
}
