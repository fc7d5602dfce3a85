package production

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrStationIsNotConstructed is returned when a Station instance was not
// created through the NewStation or RestoreStation factory functions.
var ErrStationIsNotConstructed = errors.New("Station must be created via NewStation or RestoreStation")

// Station is a static lookup entity describing a physical work station.
// Codes are unique facility-wide (enforced at persistence). The production
// workflow consumes stations when assigning tasks but never mutates them;
// Deactivate exists for facility administration.
type Station struct {
	id          kernel.UUID
	code        string
	stationType Stage
	active      bool

	isConstructed bool
}

// NewStation creates an active station with a unique code.
func NewStation(id kernel.UUID, code string, stationType Stage) (*Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if err := stationType.Validate(); err != nil {
		return nil, err
	}

	return &Station{
		id:            id,
		code:          code,
		stationType:   stationType,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreStation reconstructs a station from persistence.
func RestoreStation(id kernel.UUID, code string, stationType Stage, active bool) (*Station, error) {
	station, err := NewStation(id, code, stationType)
	if err != nil {
		return nil, err
	}
	station.active = active
	return station, nil
}

// Validate ensures the Station was created through a factory function.
func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}
	return nil
}

// ID returns the station's unique identifier.
func (s *Station) ID() kernel.UUID {
	return s.id
}

// Code returns the unique station code, e.g. "PROD-01".
func (s *Station) Code() string {
	return s.code
}

// Type returns the facility area the station serves.
func (s *Station) Type() Stage {
	return s.stationType
}

// IsActive reports whether the station accepts new task assignments.
func (s *Station) IsActive() bool {
	return s.active
}

// Deactivate takes the station out of service for new assignments.
func (s *Station) Deactivate() {
	s.active = false
}
