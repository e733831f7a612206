package order

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errs.NewValueIsRequiredError(
		"order must be created via NewOrder or RestoreOrder constructors")
)

// Order represents a delivery order in the system. It is the aggregate root
// that manages the order lifecycle from creation through assignment to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier (the basket reference supplied by the caller)
//   - Must have a valid delivery location
//   - Status transitions are forward-only: Created -> Assigned -> Completed
//   - A courier is attached exactly while the order is Assigned or Completed
//   - Can only be created through the factory methods
type Order struct {
	// id is the unique identifier for the order, shared with the originating basket
	id kernel.UUID

	// courierID is the assigned courier's ID (nil while unassigned)
	courierID *kernel.UUID

	// location is the delivery destination
	location kernel.Location

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The id is supplied by
// the caller because it references the basket the order was placed from; the
// same basket always produces the same order id.
//
// The created order starts in Created status with no courier assigned.
func NewOrder(id kernel.UUID, location kernel.Location) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setLocation(location),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// It validates that the courier reference is consistent with the status:
// Created orders have none, Assigned and Completed orders have one.
func RestoreOrder(id kernel.UUID, location kernel.Location, courierID *kernel.UUID, status Status) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setLocation(location),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := order.setCourier(courierID); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Location returns the delivery location for the order.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID.
// Returns nil if no courier is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Assign assigns the order to a courier and updates the status to Assigned.
//
// Business rules:
//   - The courier ID must be valid
//   - The order must be in Created status; an assigned order keeps its courier
//
// After successful assignment, Courier() returns the assigned courier's ID.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete marks the order as completed (delivered).
//
// Business rules:
//   - The order must be in Assigned status
//   - Completed is a final state with no further transitions
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setLocation validates and sets the order's delivery location.
func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

// setStatus validates and sets the order's status.
// Used during restoration from persistent state.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCourier validates and sets the courier reference consistently with the
// current status. Used during restoration from persistent state.
func (o *Order) setCourier(courierID *kernel.UUID) error {
	if err := o.status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}

	o.courierID = courierID
	return nil
}
