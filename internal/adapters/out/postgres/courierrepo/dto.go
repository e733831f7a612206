// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The status is stored by name so the rows stay readable in ad hoc queries.
type CourierDTO struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name      string       `gorm:"type:varchar(255);not null"`
	Status    string       `gorm:"type:varchar(32);not null;index"`
	Location  LocationDTO  `gorm:"embedded;embeddedPrefix:location_"`
	Transport TransportDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO represents the embedded location coordinates within the courier table.
// Stores the courier's current position on the delivery grid.
type LocationDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

// TransportDTO represents the database structure for persisting the courier's transport.
// Links to its courier via foreign key.
type TransportDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Speed     int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for transport entities.
// Overrides GORM's default naming convention to use "transports" instead of "transport_dtos".
func (TransportDTO) TableName() string {
	return "transports"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(c *courier.Courier) CourierDTO {
	courierID := c.ID().Bytes()
	transport := c.Transport()

	return CourierDTO{
		ID:     courierID,
		Name:   c.Name(),
		Status: c.Status().String(),
		Location: LocationDTO{
			X: c.Location().X(),
			Y: c.Location().Y(),
		},
		Transport: TransportDTO{
			ID:        transport.ID().Bytes(),
			CourierID: courierID,
			Name:      transport.Name(),
			Speed:     transport.Speed(),
		},
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the aggregate including its transport using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	status, err := courier.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	transport, err := transportToDomain(dto.Transport)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, transport, loc, status)
}

// transportToDomain converts a transport DTO to its domain entity.
func transportToDomain(dto TransportDTO) (*courier.Transport, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreTransport(id, dto.Name, dto.Speed)
}
