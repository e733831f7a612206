// Package courier provides domain entities and business logic for courier
// management in the delivery system. It implements the Courier aggregate root
// with availability tracking and speed-constrained movement.
//
// The package includes:
//   - Courier: The aggregate root managing identity, availability, and movement
//   - Transport: An entity representing the courier's vehicle and its speed
//   - Status: The courier availability state machine (free/busy)
//
// Key business rules:
//   - Couriers must have a valid unique identifier, name, and transport
//   - Only a free courier can be dispatched to an order
//   - Only a busy courier moves, one transport-speed step at a time, X axis first
//   - Delivery time estimates are Manhattan distance divided by transport speed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
