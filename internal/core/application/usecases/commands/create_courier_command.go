package commands

import (
	"errors"

	"delivery/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
	ErrSpeedIsInvalid = errors.New("speed must be greater than 0")
)

// CreateCourierCommand represents a request to register a new courier in the
// delivery system. The speed determines the courier's transport: 1 is a
// pedestrian, 2 a bicycle, 3 a car.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("John Doe", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	name  string
	speed int

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Validates that name is not empty and speed is positive; the transport
// entity enforces the exact speed bounds during handling.
func NewCreateCourierCommand(name string, speed int) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setSpeed(speed),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// Name returns the courier name from the command.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Speed returns the courier speed from the command.
func (c CreateCourierCommand) Speed() int {
	return c.speed
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setSpeed(speed int) error {
	if speed <= 0 {
		return ErrSpeedIsInvalid
	}

	c.speed = speed
	return nil
}
