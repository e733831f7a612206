// Package kernel provides core domain primitives for the delivery system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Location: a value object representing coordinates on the delivery grid
//
// These primitives enforce domain invariants so that domain objects are always
// in a valid state. They are immutable and safe for concurrent use.
package kernel
