// Package order provides the e-commerce order aggregate as mirrored from the
// pharmacy backend: a Header, its line-item Details and a single Payment.
//
// The package includes:
//   - Order: the aggregate root built by NewOrder
//   - Status: the closed status enumeration, parsed once from backend text
//   - Header, Detail, Payment: the three records an order is made of
//
// Key business rules:
//   - Status transitions other than cancellation are driven by the backend
//   - Cancellation is refused for Delivered and Received orders
//   - Cancellation of any other order, including an already cancelled one,
//     leaves it CancelledByCustomer
//   - Detail sub-totals and payment totals are checked and reported but never
//     rejected, because the backend is the source of truth for amounts
package order
