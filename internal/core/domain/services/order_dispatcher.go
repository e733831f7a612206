package services

import (
	"errors"
	"fmt"
	"math"

	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/order"
	"delivery/internal/pkg/errs"
)

// ErrNoFreeCouriers is returned when no free courier is available to take an
// order. The wrapped error carries the order id for diagnostics; use
// errors.Is to classify it.
var ErrNoFreeCouriers = errors.New("no free couriers available")

// DispatchService is a domain service responsible for assigning the best
// available courier to a delivery order.
//
// Key responsibilities:
//   - Validating the order and candidate couriers before dispatch
//   - Selecting the free courier with the shortest time to the order location
//   - Flipping the chosen pair into Assigned/Busy in one step
//
// Business rules:
//   - Only Created orders are dispatched
//   - Only free couriers are considered
//   - Ties on time-to-location go to the first courier in the candidate slice
//   - The caller persists both the order and the courier after dispatch
//
// Example usage:
//
//	dispatcher := NewDispatchService()
//	assigned, err := dispatcher.Dispatch(order, couriers)
//	if errors.Is(err, ErrNoFreeCouriers) {
//	    // No available couriers right now, retry on the next cycle
//	    return
//	}
type DispatchService struct{}

// NewDispatchService creates a new DispatchService instance.
func NewDispatchService() DispatchService {
	return DispatchService{}
}

// Dispatch finds the best free courier for the order and executes the
// assignment: the order becomes Assigned to the courier and the courier
// becomes Busy. Both aggregates are mutated in place; the caller is
// responsible for persisting them.
//
// The candidate collection is required: a missing or empty slice is a caller
// error (errs.ErrValueIsRequired), while a non-empty slice with no free
// courier returns ErrNoFreeCouriers wrapped with the order id.
func (s DispatchService) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if len(couriers) == 0 {
		return nil, errs.NewValueIsRequiredError("couriers")
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	bestCourier, err := s.findBestCourier(o, couriers)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(bestCourier.ID()); err != nil {
		return nil, err
	}

	if err = bestCourier.SetBusy(); err != nil {
		return nil, err
	}

	return bestCourier, nil
}

// findBestCourier searches the candidates for the free courier with the
// minimum time to the order location. Strict comparison keeps the first
// courier encountered on ties.
func (s DispatchService) findBestCourier(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	var (
		bestCourier *courier.Courier
		bestTime    = math.MaxFloat64
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if c.Status() != courier.StatusFree {
			continue
		}

		tm, err := c.CalculateTimeToLocation(o.Location())
		if err != nil {
			return nil, err
		}

		if tm < bestTime {
			bestTime = tm
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, fmt.Errorf("%w for order %s", ErrNoFreeCouriers, o.ID())
	}

	return bestCourier, nil
}
