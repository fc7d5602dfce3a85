package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"
)

// StationRepository defines the read contract for station lookup data.
// Stations are provisioned out of band; the engine only consults them when
// validating task placement.
type StationRepository interface {
	// Get retrieves a station by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*production.Station, error)
}
