package commands

import (
	"errors"

	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStreetIsRequired = errors.New("street is required")
)

// CreateOrderCommand represents a request to create a new delivery order.
// The basket id doubles as the order id, which makes order creation
// idempotent: placing the same basket twice yields a single order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(basketID, "123 Main Street")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geoClient)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	basketID kernel.UUID
	street   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the basket id is valid and the street is not empty.
func NewCreateOrderCommand(basketID kernel.UUID, street string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setBasketID(basketID),
		orderCommand.setStreet(street),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// BasketID returns the basket identifier the order is created from.
func (c CreateOrderCommand) BasketID() kernel.UUID {
	return c.basketID
}

// Street returns the delivery destination street address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

func (c *CreateOrderCommand) setBasketID(basketID kernel.UUID) error {
	if err := basketID.Validate(); err != nil {
		return err
	}

	c.basketID = basketID
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}
