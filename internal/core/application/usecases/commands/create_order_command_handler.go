package commands

import (
	"context"
	"errors"

	"delivery/internal/core/domain/model/order"
	"delivery/internal/core/ports"
	"delivery/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The delivery location is resolved from the street address through the geo
// client. Creation is idempotent: if an order for the basket already exists,
// the command succeeds without creating a duplicate.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geoClient)
//	cmd, _ := NewCreateOrderCommand(basketID, "456 Oak Avenue")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	geoClient  ports.GeoClient
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a GeoClient
// for street resolution.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, geoClient ports.GeoClient) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		geoClient:  geoClient,
	}
}

// Handle processes the order creation command.
// Re-creating an existing basket is a success no-op. Otherwise the street is
// geocoded and the order persisted in "created" status within a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	_, err := orderRepo.Get(ctx, cmd.BasketID())
	if err == nil {
		// The basket was already turned into an order
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	location, err := h.geoClient.GetLocation(ctx, cmd.Street())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.BasketID(), location)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
