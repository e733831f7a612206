package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"delivery/internal/pkg/errs"
	"delivery/internal/pkg/guard"
)

// Coordinate represents a position value on the delivery grid.
// Valid coordinates range from LocationMinX/Y to LocationMaxX/Y inclusive.
type Coordinate int8

const (
	// LocationMinX is the minimum valid X coordinate on the delivery grid.
	LocationMinX Coordinate = 1
	// LocationMinY is the minimum valid Y coordinate on the delivery grid.
	LocationMinY Coordinate = 1
	// LocationMaxX is the maximum valid X coordinate on the delivery grid.
	LocationMaxX Coordinate = 10
	// LocationMaxY is the maximum valid Y coordinate on the delivery grid.
	LocationMaxY Coordinate = 10
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly initialized Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewRandomLocation constructors")

// Location represents a point on the delivery grid with validated coordinates.
// Location is an immutable value object; two locations are equal when both
// coordinates match. The zero value is invalid and fails validation - use the
// constructors to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation(5, 7)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Location: %s", loc) // Output: Location(5,7)
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates.
// Both coordinates must be within [LocationMinX..LocationMaxX] and
// [LocationMinY..LocationMaxY]; out-of-bounds values produce a validation error.
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewRandomLocation creates a Location with uniformly random coordinates
// within the valid grid bounds.
func NewRandomLocation() (Location, error) {
	x := Coordinate(rand.IntN(int(LocationMaxX-LocationMinX+1)) + int(LocationMinX)) //nolint:gosec // it's ok
	y := Coordinate(rand.IntN(int(LocationMaxY-LocationMinY+1)) + int(LocationMinY)) //nolint:gosec // it's ok
	return NewLocation(x, y)
}

// Validate checks if the Location was properly constructed using a constructor.
// The zero value fails with ErrLocationIsNotConstructed.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate of the location.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the Y coordinate of the location.
func (l Location) Y() Coordinate {
	return l.y
}

// String implements fmt.Stringer using the format "Location(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two locations for equality by coordinates.
// Both locations must be properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance calculates the Manhattan distance between two locations:
// |x1-x2| + |y1-y2|, the shortest path length when movement is restricted to
// horizontal and vertical steps. Both locations must be properly constructed.
//
// Example:
//
//	loc1, _ := NewLocation(1, 1)
//	loc2, _ := NewLocation(4, 5)
//	distance, err := loc1.Distance(loc2)
//	// distance = 7 (|1-4| + |1-5| = 3 + 4 = 7), err = nil
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(l.x - other.x)
	dy := abs(l.y - other.y)
	return int(dx + dy), nil
}

// setX sets the x coordinate with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (l *Location) setX(x Coordinate) error {
	if x < LocationMinX || x > LocationMaxX {
		return errs.NewValueIsOutOfRangeError("x", x, LocationMinX, LocationMaxX)
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
// See the receiver note on setX.
func (l *Location) setY(y Coordinate) error {
	if y < LocationMinY || y > LocationMaxY {
		return errs.NewValueIsOutOfRangeError("y", y, LocationMinY, LocationMaxY)
	}

	l.y = y
	return nil
}

func abs(x Coordinate) Coordinate {
	if x < 0 {
		return -x
	}
	return x
}
