package commands

import (
	"context"
	"errors"

	"delivery/internal/core/domain/services"
	"delivery/internal/pkg/errs"
)

var (
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
	ErrNoOrderFound        = errors.New("no order found")
)

// AssignCourierCommandHandler orchestrates the courier assignment process.
// Finds the oldest pending order and matches it with the best free courier.
// Both state changes are committed in a single transaction.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	cmd := NewAssignCourierCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Courier assigned successfully")
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
// Retrieves the first order in "created" status, loads the free couriers, and
// uses DispatchService to pick the closest one in time. The assigned pair is
// persisted atomically. Returns ErrNoOrderFound when nothing is pending and
// ErrNoFreeCouriersFound when every courier is busy; callers treat both as
// quiet no-ops.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	pendingOrder, err := ordersRepo.GetFirstInCreatedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoFreeCouriersFound
	}

	assignedCourier, err := services.NewDispatchService().Dispatch(pendingOrder, couriers)
	if errors.Is(err, services.ErrNoFreeCouriers) {
		return ErrNoFreeCouriersFound
	}
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, assignedCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
