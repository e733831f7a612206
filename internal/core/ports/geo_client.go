package ports

import (
	"context"

	"delivery/internal/core/domain/model/kernel"
)

// GeoClient resolves a street address to delivery grid coordinates.
// The production implementation talks to the external Geo service over gRPC;
// tests substitute a mock.
type GeoClient interface {
	// GetLocation returns the grid location for the given street.
	// An unresolvable street is an error: orders cannot exist without a
	// delivery location.
	GetLocation(ctx context.Context, street string) (kernel.Location, error)

	// Close releases the underlying connection.
	Close() error
}
