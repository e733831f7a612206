package courier

import (
	"fmt"

	"delivery/internal/pkg/errs"
)

// Status represents the availability state of a courier.
//
// State transitions:
//
//	Free ──> Busy ──> Free
//
// A courier becomes Busy when an order is dispatched to it and returns to
// Free when the order is delivered. Status is a value object providing
// validated transitions and string names for persistence.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusFree indicates the courier is available for dispatch.
	StatusFree

	// StatusBusy indicates the courier is delivering an order.
	StatusBusy
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusFree:    "free",
		StatusBusy:    "busy",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusFree: "free",
		StatusBusy: "busy",
	}
}

// StatusFromString converts a persisted status name back to a Status value.
// Returns an error for names that do not match a valid status.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid courier status", name),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are StatusFree and StatusBusy; StatusUnknown (0) and any
// other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name used for persistence and display.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// SetBusy transitions the status to StatusBusy.
//
// Valid transitions:
//   - StatusFree -> StatusBusy
//
// A Busy courier cannot take another order, so Busy -> Busy is rejected.
func (s Status) SetBusy() (Status, error) {
	if s != StatusFree {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to become busy", s.String()),
		)
	}

	return StatusBusy, nil
}

// SetFree transitions the status to StatusFree.
// Always succeeds for valid statuses; freeing an already free courier is a no-op.
func (s Status) SetFree() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return StatusFree, nil
}
