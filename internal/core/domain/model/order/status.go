package order

import (
	"fmt"

	"delivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Assigned ──> Completed
//
// Transitions are forward-only: an assigned order stays with its courier
// until delivered. Status is a value object that validates transitions and
// provides string names for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a courier.
	Created

	// Assigned indicates the order has been assigned to a courier.
	Assigned

	// Completed indicates the order has been successfully delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		Assigned:  "assigned",
		Completed: "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "created",
		Assigned:  "assigned",
		Completed: "completed",
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", name),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are Created, Assigned, and Completed; Unknown (0) and any
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

// ValidateAssign checks if the status allows assignment without performing
// the transition. Only Created orders can be assigned: an assigned order
// keeps its courier until delivery, and completed orders are final.
func (s Status) ValidateAssign() error {
	if s != Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - Created orders must not have a courier assigned
//   - Assigned and Completed orders must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == Assigned || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Created -> Assigned
//
// Assigned and Completed orders cannot be assigned again.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Assigned -> Completed
//
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
