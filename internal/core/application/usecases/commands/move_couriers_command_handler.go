package commands

import (
	"context"
	"log/slog"

	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/order"
)

// MoveCouriersCommandHandler orchestrates one movement step for all active
// couriers. Each courier moves toward its order's destination; on arrival the
// order is completed and the courier freed.
//
// A failure on one courier-order pair never blocks the rest of the batch:
// the pair is logged and skipped so a single inconsistent row cannot stall
// every delivery in the system.
//
// Example:
//
//	handler := NewMoveCouriersCommandHandler(uowFactory, logger)
//	cmd := NewMoveCouriersCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("courier movement failed: %w", err)
//	}
type MoveCouriersCommandHandler struct {
	uowFactory UoWFactory
	log        *slog.Logger
}

// NewMoveCouriersCommandHandler creates a handler for courier movement operations.
// Requires a UoWFactory for coordinating updates across order and courier
// repositories. A nil logger falls back to slog.Default().
func NewMoveCouriersCommandHandler(uowFactory UoWFactory, log *slog.Logger) MoveCouriersCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return MoveCouriersCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the courier movement command.
// Retrieves all orders in "assigned" status and advances each courier one
// movement step. Pairs that fail to load or move are skipped; the batch
// commits whatever progress the remaining pairs made.
func (h *MoveCouriersCommandHandler) Handle(ctx context.Context, cmd MoveCouriersCommand) error {
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

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetAllInAssignedStatus(ctx)
	if err != nil {
		return err
	}

	for _, assignedOrder := range orders {
		courierID := assignedOrder.Courier()
		if courierID == nil {
			h.log.WarnContext(ctx, "assigned order has no courier reference, skipping",
				"order_id", assignedOrder.ID().String())
			continue
		}

		orderCourier, courierErr := courierRepo.Get(ctx, *courierID)
		if courierErr != nil {
			h.log.WarnContext(ctx, "failed to load courier for assigned order, skipping",
				"order_id", assignedOrder.ID().String(),
				"courier_id", courierID.String(),
				"error", courierErr)
			continue
		}

		if moveErr := h.moveOrderCourier(assignedOrder, orderCourier); moveErr != nil {
			h.log.WarnContext(ctx, "failed to move courier, skipping",
				"order_id", assignedOrder.ID().String(),
				"courier_id", courierID.String(),
				"error", moveErr)
			continue
		}

		if err = ordersRepo.Update(ctx, assignedOrder); err != nil {
			return err
		}

		if err = courierRepo.Update(ctx, orderCourier); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// moveOrderCourier advances a single courier one step toward its order and,
// if the courier arrives, completes the order and frees the courier.
func (h *MoveCouriersCommandHandler) moveOrderCourier(
	assignedOrder *order.Order,
	orderCourier *courier.Courier,
) error {
	if err := orderCourier.Move(assignedOrder.Location()); err != nil {
		return err
	}

	arrived, err := orderCourier.Location().IsEqual(assignedOrder.Location())
	if err != nil || !arrived {
		return err
	}

	if err := assignedOrder.Complete(); err != nil {
		return err
	}

	if err := orderCourier.SetFree(); err != nil {
		return err
	}

	return nil
}
