package commands

import (
	"context"

	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/kernel"
)

// CreateCourierCommandHandler handles the business logic for courier
// registration. The courier receives a transport matching its speed and a
// random starting location on the delivery grid.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	cmd, _ := NewCreateCourierCommand("Express Courier", 3)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("courier registration failed: %w", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
// Requires a CourierUoWFactory for transactional persistence operations.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier creation command.
// Creates a new courier entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := kernel.NewRandomLocation()
	if err != nil {
		return err
	}

	courierEntity, err := courier.NewCourier(
		kernel.NewUUID(),
		cmd.Name(),
		courier.TransportNameForSpeed(cmd.Speed()),
		cmd.Speed(),
		location,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
