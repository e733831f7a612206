// Package ports defines the contracts between the application core and
// infrastructure adapters. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing, retrieving, and querying courier entities
// with their complete state including transport and availability status.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns the complete courier with its transport and status.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllFree retrieves all couriers in the free status, available to be
	// dispatched to a new order.
	GetAllFree(ctx context.Context) ([]*courier.Courier, error)
}
