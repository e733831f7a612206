package queries

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/guard"
)

var (
	ErrGetBusyCouriersQueryIsNotConstructed = errors.New(
		"GetBusyCouriersQuery must be created via NewGetBusyCouriersQuery constructor",
	)
)

// GetBusyCouriersQuery retrieves the couriers currently delivering an order.
// Used by dispatch monitoring to see which part of the fleet is occupied.
type GetBusyCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBusyCouriersQuery creates a query to retrieve busy couriers.
func NewGetBusyCouriersQuery() GetBusyCouriersQuery {
	return GetBusyCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBusyCouriersQueryIsNotConstructed if validation fails.
func (q GetBusyCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetBusyCouriersQueryIsNotConstructed)
}

// GetBusyCouriersQueryResponse represents a courier occupied with a delivery.
type GetBusyCouriersQueryResponse struct {
	ID            kernel.UUID
	Name          string
	TransportName string
	Location      kernel.Location
}
