package stationrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"

	"github.com/google/uuid"
)

// StationDTO is the database representation of a station.
type StationDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code   string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Type   string    `gorm:"type:varchar(16);not null"`
	Active bool      `gorm:"not null"`
}

// TableName returns the database table name.
func (StationDTO) TableName() string {
	return "stations"
}

// toDomain converts a database representation back to a domain station.
func toDomain(dto StationDTO) (*production.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return production.RestoreStation(id, dto.Code, production.Stage(dto.Type), dto.Active)
}
