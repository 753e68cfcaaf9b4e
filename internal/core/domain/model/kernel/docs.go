// Package kernel provides core domain primitives shared by the order and
// shipment models.
//
// The package includes:
//   - Money: a decimal currency amount that never loses precision on sums
//   - Timestamp parsing: the layouts the pharmacy backend is known to emit
//
// These primitives are immutable values and are safe for concurrent use.
package kernel
