package courier

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errs.NewValueIsRequiredError(
		"courier must be created via NewCourier or RestoreCourier constructors")
	// ErrCourierIsNotFree is returned when dispatching a courier that is already busy.
	ErrCourierIsNotFree = errors.New("courier is not free")
	// ErrCourierIsNotBusy is returned when moving a courier that has no order to travel to.
	ErrCourierIsNotBusy = errors.New("courier is not busy")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity, availability, and
// movement on the delivery grid.
//
// Business rules:
//   - A courier owns exactly one Transport, which bounds its per-step movement
//   - A new courier starts Free; dispatch flips it to Busy, delivery back to Free
//   - Only a Busy courier moves: movement exists to reach the assigned order
//   - Time to a location is Manhattan distance divided by transport speed
//
// Example usage:
//
//	location, _ := kernel.NewLocation(1, 1)
//	c, err := NewCourier(kernel.NewUUID(), "John Doe", TransportCar, 3, location)
//	if err != nil {
//	    // Handle construction error
//	}
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// transport is the vehicle bounding the courier's movement
	transport *Transport
	// location is the current position of the courier on the delivery grid
	location kernel.Location
	// status is the courier's availability state
	status Status
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// A fresh Transport entity is created from transportName and transportSpeed,
// and the courier starts in StatusFree at the given location.
//
// All parameters are validated; errors are aggregated so a caller sees every
// invalid input at once.
func NewCourier(
	id kernel.UUID,
	name string,
	transportName string,
	transportSpeed int,
	location kernel.Location,
) (*Courier, error) {
	transport, err := NewTransport(kernel.NewUUID(), transportName, transportSpeed)
	if err != nil {
		return nil, err
	}

	courier := &Courier{
		status: StatusFree,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setTransport(transport),
		courier.setLocation(location),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including its transport and availability status. The restored courier
// behaves identically to one created through normal domain operations.
func RestoreCourier(
	id kernel.UUID,
	name string,
	transport *Transport,
	location kernel.Location,
	status Status,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setTransport(transport),
		courier.setLocation(location),
		courier.setStatus(status),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed using a constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Transport returns the courier's transport entity.
func (c *Courier) Transport() *Transport {
	return c.transport
}

// Location returns the current position of the courier on the delivery grid.
func (c *Courier) Location() kernel.Location {
	return c.location
}

// Status returns the courier's availability status.
func (c *Courier) Status() Status {
	return c.status
}

// SetBusy marks the courier as dispatched to an order.
// Only a Free courier can become Busy; dispatching a Busy courier
// returns ErrCourierIsNotFree.
func (c *Courier) SetBusy() error {
	newStatus, err := c.status.SetBusy()
	if err != nil {
		return errors.Join(ErrCourierIsNotFree, err)
	}

	c.status = newStatus
	return nil
}

// SetFree marks the courier as available again after delivering its order.
func (c *Courier) SetFree() error {
	newStatus, err := c.status.SetFree()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// CalculateTimeToLocation estimates the number of movement steps required to
// reach a target location: Manhattan distance divided by transport speed.
// Fractional results are preserved so dispatch can compare couriers precisely.
func (c *Courier) CalculateTimeToLocation(target kernel.Location) (float64, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	distance, err := c.location.Distance(target)
	if err != nil {
		return 0, err
	}

	return float64(distance) / float64(c.transport.Speed()), nil
}

// Move performs one movement step toward the target location.
// Movement is only legal while the courier is Busy: a courier travels because
// it is en route to its assigned order. Moving a Free courier returns
// ErrCourierIsNotBusy.
//
// The step covers at most the transport speed in grid cells, X axis first.
// Reaching the target takes repeated calls; the caller decides when the
// courier has arrived by comparing locations.
func (c *Courier) Move(target kernel.Location) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if c.status != StatusBusy {
		return ErrCourierIsNotBusy
	}

	newLocation, err := c.transport.Move(c.location, target)
	if err != nil {
		return err
	}

	return c.setLocation(newLocation)
}

// setID sets the courier's unique identifier with validation.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the courier's name with validation.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// setTransport sets the courier's transport with validation.
func (c *Courier) setTransport(transport *Transport) error {
	if err := transport.Validate(); err != nil {
		return err
	}

	c.transport = transport
	return nil
}

// setLocation sets the courier's current location with validation.
func (c *Courier) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

// setStatus sets the courier's status with validation.
// Used during restoration from persistent state.
func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
