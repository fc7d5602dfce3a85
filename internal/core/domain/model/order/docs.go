// Package order implements the Order aggregate: a customer's purchase request
// and its fulfillment lifecycle.
//
// The aggregate root is Order, which owns an ordered list of line items and an
// append-only status history. All mutations go through the aggregate's
// methods; the status state machine is implemented by the Status value object
// and enforced by Order.TransitionTo.
//
// Line items are point-in-time snapshots of catalog data. Unit price, SKU and
// name are copied at creation and never refreshed, and each item's line total
// is computed exactly once. A later catalog price change must not affect an
// existing order.
package order
