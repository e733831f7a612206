package courier

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

const (
	// TransportMinSpeed is the slowest allowed transport speed.
	TransportMinSpeed = 1
	// TransportMaxSpeed is the fastest allowed transport speed.
	TransportMaxSpeed = 3
)

// Transport names matched to their speeds.
const (
	TransportPedestrian = "pedestrian" // speed 1
	TransportBicycle    = "bicycle"    // speed 2
	TransportCar        = "car"        // speed 3
)

// Transport errors.
var (
	// ErrTransportNameIsRequired is returned when creating a transport with a blank name.
	ErrTransportNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrTransportIsNotConstructed is returned when using an improperly initialized Transport.
	ErrTransportIsNotConstructed = errs.NewValueIsRequiredError(
		"transport must be created via NewTransport or RestoreTransport constructors")
)

// TransportNameForSpeed returns the canonical transport name for a speed.
// Speeds outside [TransportMinSpeed, TransportMaxSpeed] map to "unknown",
// which NewTransport then rejects via speed validation.
func TransportNameForSpeed(speed int) string {
	switch speed {
	case 1:
		return TransportPedestrian
	case 2:
		return TransportBicycle
	case 3:
		return TransportCar
	default:
		return "unknown"
	}
}

// Transport is the vehicle a courier uses for deliveries. It is an entity
// owned by the Courier aggregate; its speed bounds how far the courier
// travels per movement step.
type Transport struct {
	// id uniquely identifies the transport
	id kernel.UUID
	// name is the human-readable transport name (pedestrian, bicycle, car)
	name string
	// speed is the number of grid cells covered per movement step
	speed int
	// guard ensures the transport was properly constructed
	guard guard.ConstructorGuard
}

// NewTransport creates a Transport with the specified parameters.
// The name must be non-blank and the speed within
// [TransportMinSpeed, TransportMaxSpeed].
func NewTransport(id kernel.UUID, name string, speed int) (*Transport, error) {
	transport := &Transport{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transport.setID(id),
		transport.setName(name),
		transport.setSpeed(speed),
	); err != nil {
		return nil, err
	}

	return transport, nil
}

// RestoreTransport reconstructs a Transport from persistent storage.
// It applies the same validation as NewTransport.
func RestoreTransport(id kernel.UUID, name string, speed int) (*Transport, error) {
	return NewTransport(id, name, speed)
}

// Validate checks if the Transport was properly constructed.
func (t *Transport) Validate() error {
	if t == nil {
		return ErrTransportIsNotConstructed
	}
	return t.guard.Validate(ErrTransportIsNotConstructed)
}

// IsEqual compares two transports by their unique identifiers.
func (t *Transport) IsEqual(other *Transport) bool {
	if other == nil {
		return false
	}
	return t.id.IsEqual(other.id)
}

// ID returns the unique identifier of the transport.
func (t *Transport) ID() kernel.UUID {
	return t.id
}

// Name returns the transport name.
func (t *Transport) Name() string {
	return t.name
}

// Speed returns the number of grid cells the transport covers per step.
func (t *Transport) Speed() int {
	return t.speed
}

// Move performs one movement step from the current location toward the target
// and returns the resulting location. The step covers at most Speed() grid
// cells, spent on the X axis first and any remainder on the Y axis. The
// result never overshoots the target on either axis.
//
// Example: from (1,1) toward (6,6) at speed 3 the step lands on (4,1):
// all three cells go to X because the X gap is still larger than the budget.
func (t *Transport) Move(from kernel.Location, to kernel.Location) (kernel.Location, error) {
	if err := errors.Join(t.Validate(), from.Validate(), to.Validate()); err != nil {
		return kernel.Location{}, err
	}

	budget := t.speed

	dx := int(to.X() - from.X())
	dy := int(to.Y() - from.Y())

	stepX := clamp(dx, -budget, budget)
	budget -= absInt(stepX)
	stepY := clamp(dy, -budget, budget)

	return kernel.NewLocation(
		from.X()+kernel.Coordinate(stepX), //nolint:gosec // step is bounded by speed
		from.Y()+kernel.Coordinate(stepY), //nolint:gosec // step is bounded by speed
	)
}

// setID sets the transport's unique identifier with validation.
func (t *Transport) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.id = id
	return nil
}

// setName sets the transport's name with validation.
func (t *Transport) setName(name string) error {
	if name == "" {
		return ErrTransportNameIsRequired
	}

	t.name = name
	return nil
}

// setSpeed sets the transport's speed with validation.
func (t *Transport) setSpeed(speed int) error {
	if speed < TransportMinSpeed || speed > TransportMaxSpeed {
		return errs.NewValueIsOutOfRangeError("speed", speed, TransportMinSpeed, TransportMaxSpeed)
	}

	t.speed = speed
	return nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// absInt returns the absolute value of an integer.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
