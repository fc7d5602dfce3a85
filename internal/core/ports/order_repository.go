// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their items and status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns a duplicate order number error when the generated order
	// number collides with an existing one, so callers can regenerate
	// and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is conditional on the stored version matching the version
	// the aggregate was loaded with; a stale aggregate yields a version
	// error and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all items and status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its human-facing order number.
	GetByNumber(ctx context.Context, number order.OrderNumber) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// ordered by creation time.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
